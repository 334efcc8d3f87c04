// Package config loads larder's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/larder/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	product_api     = "https://fakestoreapi.com/products"
//	berry_api       = "https://pokeapi.co/api/v2/berry/"
//	state_path      = "~/.local/share/larder/state.db"
//	log_path        = "~/.local/share/larder/larder.log"
//	log_level       = "info"
//	request_timeout = "5s"
//	berry_limit     = 100
//
// Every field is optional. Tilde expansion is applied to state_path and
// log_path; the literal ":memory:" keeps state in a transient database.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, invalid
// TOML, an unparsable request_timeout and a negative berry_limit. A missing
// file is not an error.
package config
