// Package store reads and writes leads documents.
//
// A leads document is an object with a single "leads" array of records:
//
//	{"leads": [{"_id": 1, "email": "a@x.com", "entryDate": "2020-01-01"}]}
//
// Files ending in .yaml or .yml are handled as YAML (goccy/go-yaml); every
// other file is JSON. Output is written in the same document shape so a
// consolidated file can be fed back in as input.
//
// # Client Interface
//
// The Client interface abstracts file access so services can be tested with
// the testify mock in store/mocks.
//
// # Usage
//
//	client := store.NewClient(cfg.Files)
//	leads, err := client.Load(ctx, cfg.Files.Input)
//	err = client.Save(ctx, cfg.Files.Output, leads)
package store
