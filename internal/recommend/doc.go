// Package recommend turns EDHREC card lists into deck advice.
//
// Engine fetches and ranks recommendations for a commander and suggests
// additions for a deck. Analyzer compares a deck with the same data to find
// low-synergy and off-theme cards worth cutting.
package recommend
