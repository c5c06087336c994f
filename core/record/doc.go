// Package record defines the lead record handled by the consolidator.
//
// A Record is an open mapping from field name to value that remembers the
// order in which fields were first seen, so a consolidated lead is written
// back with the same field layout it was read with.
//
// # Typed Accessors
//
// The merge engine only inspects two kinds of fields: the identifying keys
// (by default "_id" and "email") and the timestamp field (by default
// "entryDate"). These are read through typed accessors:
//
//   - Key returns a KeyValue with a canonical bucketing form and an explicit
//     Missing state.
//   - Timestamp returns a Timestamp holding both the raw value and, when it
//     parses, the instant it denotes.
//
// Every other field stays an untyped value (string, json.Number, bool, nil,
// map, or slice).
//
// # Encoding
//
// Records implement json.Marshaler/json.Unmarshaler and the goccy/go-yaml
// marshaler interfaces. JSON numbers are kept as json.Number so large
// identifiers survive a round trip unchanged.
package record
