// Package utils provides common utility functions for the lead consolidator.
// It includes helpers for converting loosely typed record values (decoded
// JSON or YAML) into the integers, strings, and timestamps the merge engine
// compares.
package utils
