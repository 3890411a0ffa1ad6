// Package logging provides the structured logger used across prtl.
//
// It is a thin layer over Go's slog package. Every entry carries a subsystem
// identifier so output can be filtered by component:
//
//   - **App**: command dispatch and the load/store transaction
//   - **Portal**: config file load and store
//   - **Resolver**: path canonicalization
//   - **Shell**: profile search and shorthand installation
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Portal", "Loaded config from %s", path)
//	logging.Warn("Shell", "Profile %s does not exist, creating it", path)
//	logging.Error("App", err, "Failed to release the terminal")
//
// Messages below the configured level are dropped before formatting. Until
// InitForCLI is called all log calls are no-ops, which keeps library code
// quiet in tests.
package logging
