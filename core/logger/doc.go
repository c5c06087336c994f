// Package logger provides a structured logging facility based on Zap.
//
// It offers two configured logger instances:
//
//   - New: the operational logger used by commands and services, in
//     development (debug) or production configuration.
//   - NewChangeLog: the change log. Every merge decision made by the
//     consolidator is appended to a file (change.log by default) with an
//     ISO-8601 timestamp and mirrored to the console.
//
// The change log file is opened once, in append mode, when the logger is
// built. Callers must Sync the logger before the process exits.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//   - ChangeLog: path of the append-only change log
//   - Mirror, MirrorTo: copy change log entries to stdout or stderr. Commands
//     that print machine-readable output to stdout switch the mirror to stderr.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Consolidation started")
//
//	changes, _ := logger.NewChangeLog(&cfg.Log)
//	defer changes.Sync()
package logger
