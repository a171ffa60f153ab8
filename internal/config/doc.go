// Package config provides configuration management for deckdoctor.
//
// This package handles:
//   - Loading and saving settings from YAML files
//   - Environment variable expansion (${VAR}) inside the file
//   - Default configuration values
//   - Validation of every section
//
// # Default Settings
//
// Use DefaultSettings() to get working defaults:
//
//	settings := config.DefaultSettings()
//	// Decks saved under ./decks
//	// Moxfield at https://api2.moxfield.com, EDHREC at https://json.edhrec.com
//	// 30s request timeout, 10s for the deck tech article lookup
//
// # Loading from File
//
//	settings, err := config.Load("deckdoctor.yaml")
//	if err != nil {
//	    // parse or validation error; a missing file is not an error
//	}
//
// # Example File
//
//	decks_dir: ${HOME}/mtg/decks
//	log_level: info
//	http:
//	  timeout: 20s
//	recommendations:
//	  max_concurrent_requests: 2
package config
