package recommend

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent reports the state of a category fetch.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Done and Total count finished category requests of the current
	// aggregation.
	Done  int
	Total int
}
