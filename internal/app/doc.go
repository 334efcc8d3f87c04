// Package app is larder's composition root.
//
// Open loads configuration and preferences, builds the zap file logger, the
// remote client and the state backend, then restores persisted state into a
// console.Console. Run does the same and hands the console to the TUI, which
// blocks until the user quits or the context is cancelled.
//
//	Open()
//	  ├─> config.Load()        ~/.config/larder/config.toml
//	  ├─> prefs.Load()         theme and locale
//	  ├─> logging.New()        JSON log file
//	  ├─> remote.NewClient()   product and berry APIs
//	  ├─> persist.OpenSQLite() or persist.NewMemory() with --ephemeral
//	  └─> console.Restore()    product-storage, table-storage, berry-storage
//
// Only configuration, logger and backend failures are fatal. Remote loads run
// later, from the TUI or a CLI command, and degrade to an empty list with a
// logged diagnostic.
package app
