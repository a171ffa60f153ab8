package recommend

import "strings"

// staples are format staples never flagged as low synergy, however EDHREC
// rates them for a given commander. Names are lower case.
var staples = map[string]bool{
	"sol ring":             true,
	"command tower":        true,
	"arcane signet":        true,
	"lightning greaves":    true,
	"swiftfoot boots":      true,
	"swords to plowshares": true,
	"path to exile":        true,
	"beast within":         true,
	"nature's claim":       true,
	"chaos warp":           true,
	"counterspell":         true,
	"cyclonic rift":        true,
	"rhystic study":        true,
	"smothering tithe":     true,
}

// IsStaple reports whether name is a format staple, ignoring case.
func IsStaple(name string) bool {
	return staples[strings.ToLower(name)]
}
