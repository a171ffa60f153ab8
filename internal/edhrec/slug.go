package edhrec

import "strings"

// Slug converts a commander name into EDHREC's URL form: lower-cased, commas
// and apostrophes removed, whitespace runs joined with single hyphens.
//
//	Slug("Atraxa, Praetors' Voice") // "atraxa-praetors-voice"
func Slug(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer(",", "", "'", "").Replace(name)
	return strings.Join(strings.Fields(name), "-")
}
