// Package output renders command results for the terminal or for scripts.
//
// Three formats are supported: table (olekukonko/tablewriter), json and yaml
// (goccy/go-yaml). DetectFormat picks table when stdout is a terminal and
// json otherwise, unless the caller names a format explicitly.
//
// Values that implement Tabular describe their own table layout; anything
// else given to the table formatter is written as JSON.
package output
