// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Atomic file writing
//   - JSON writing with a two-space indent
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("decks/tannuk")
//
//	// Write a value as indented JSON
//	err = ioutils.WriteJSON("decks/tannuk/cards.json", deck.Cards)
//
//	// Re-indent a raw payload, keeping its key order
//	err = ioutils.WriteIndentedJSON("decks/tannuk/deck.json", deck.Raw)
//
// # Filename Sanitization
//
// Use SanitizeFileName to turn a user-supplied deck name into a directory name:
//
//	safe := ioutils.SanitizeFileName("tannuk: stompy") // Returns "tannuk_ stompy"
package ioutils
