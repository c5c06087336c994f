// Package leads implements the lead consolidation feature.
//
// A run reads a leads document through a store.Client, hands the records to
// the dedupe engine and writes the consolidated set back out. Every run gets a
// random run ID that appears in the process log, in the change log and on the
// returned Report.
//
// # Plan and Consolidate
//
//   - Plan: load and resolve only. The change log is not written and no
//     output file is produced, so a plan can be run against production data.
//   - Consolidate: load, resolve, save. The output file is only written once
//     the engine has converged.
//   - Inspect: load and list duplicated key values without merging.
//
// Report implements output.Tabular so the CLI can print it as a table, or as
// JSON/YAML for scripts.
package leads
