package dedupe

import "lead-consolidator/core/record"

// Bucket is a group of records sharing one value of one identifying key.
type Bucket struct {
	// Key is the identifying key the bucket belongs to.
	Key string

	// Value is the shared key value.
	Value record.KeyValue

	// Records holds the members in input order.
	Records []*record.Record
}

// Duplicate reports whether the bucket holds more than one record.
func (b *Bucket) Duplicate() bool {
	return len(b.Records) > 1
}

// Index partitions records by the value of a single key.
type Index struct {
	// Key is the identifying key.
	Key string

	// Buckets holds every bucket in the order its value was first seen.
	Buckets []*Bucket

	byValue map[string]*Bucket
}

// BuildIndex places every record into the bucket for its value of key.
// A record without the field goes into the shared missing bucket.
func BuildIndex(records []*record.Record, key string) *Index {
	ix := &Index{
		Key:     key,
		byValue: make(map[string]*Bucket),
	}
	for _, r := range records {
		v := r.Key(key)
		b, ok := ix.byValue[v.Canonical()]
		if !ok {
			b = &Bucket{Key: key, Value: v}
			ix.byValue[v.Canonical()] = b
			ix.Buckets = append(ix.Buckets, b)
		}
		b.Records = append(b.Records, r)
	}
	return ix
}

// BuildIndexes builds one independent index per key.
func BuildIndexes(records []*record.Record, keys []string) map[string]*Index {
	out := make(map[string]*Index, len(keys))
	for _, k := range keys {
		out[k] = BuildIndex(records, k)
	}
	return out
}

// Lookup returns the bucket holding value, if any.
func (ix *Index) Lookup(value record.KeyValue) (*Bucket, bool) {
	b, ok := ix.byValue[value.Canonical()]
	return b, ok
}

// Size returns the number of records across all buckets.
func (ix *Index) Size() int {
	n := 0
	for _, b := range ix.Buckets {
		n += len(b.Records)
	}
	return n
}

// Duplicates returns the buckets holding more than one record.
func (ix *Index) Duplicates() []*Bucket {
	var out []*Bucket
	for _, b := range ix.Buckets {
		if b.Duplicate() {
			out = append(out, b)
		}
	}
	return out
}

// FindDuplicates scans records once per key and reports every value held by
// more than one record. Missing values are skipped when skipMissing is set.
func FindDuplicates(records []*record.Record, keys []string, skipMissing bool) []Duplicate {
	var out []Duplicate
	for _, k := range keys {
		for _, b := range BuildIndex(records, k).Duplicates() {
			if skipMissing && b.Value.Missing() {
				continue
			}
			out = append(out, Duplicate{Key: k, Value: b.Value.String(), Count: len(b.Records)})
		}
	}
	return out
}
