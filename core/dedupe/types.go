package dedupe

import "lead-consolidator/core/record"

// Default option values.
const (
	DefaultTimestampField = "entryDate"
	DefaultMaxPasses      = 50
)

// DefaultKeys are the identifying keys used when none are configured.
var DefaultKeys = []string{"_id", "email"}

// Options controls how records are matched and merged.
type Options struct {
	// Keys is the ordered list of identifying fields. Within a pass, a record
	// that already joined a group under an earlier key is not considered
	// again for a later key.
	Keys []string

	// TimestampField names the field used to order records inside a group.
	TimestampField string

	// MaxPasses bounds the number of consolidation passes.
	MaxPasses int

	// SkipMissing excludes records that lack a key from that key's
	// duplicate detection. When false, such records share one bucket.
	SkipMissing bool
}

// DefaultOptions returns options with the default keys and timestamp field.
func DefaultOptions() Options {
	keys := make([]string, len(DefaultKeys))
	copy(keys, DefaultKeys)
	return Options{
		Keys:           keys,
		TimestampField: DefaultTimestampField,
		MaxPasses:      DefaultMaxPasses,
	}
}

// Validate checks the options and returns an *OptionsError on failure.
func (o Options) Validate() error {
	if len(o.Keys) == 0 {
		return &OptionsError{Field: "keys", Message: "at least one identifying key is required"}
	}
	seen := make(map[string]struct{}, len(o.Keys))
	for _, k := range o.Keys {
		if k == "" {
			return &OptionsError{Field: "keys", Message: "identifying key names must not be empty"}
		}
		if _, dup := seen[k]; dup {
			return &OptionsError{Field: "keys", Message: "identifying key " + k + " is listed twice"}
		}
		seen[k] = struct{}{}
	}
	if o.TimestampField == "" {
		return &OptionsError{Field: "timestamp_field", Message: "timestamp field must not be empty"}
	}
	if o.MaxPasses < 1 {
		return &OptionsError{Field: "max_passes", Message: "at least one pass is required"}
	}
	return nil
}

// ChangeKind describes what a merge did to a field.
type ChangeKind string

const (
	// ChangeAdded means the survivor lacked the field and took it from a newer record.
	ChangeAdded ChangeKind = "added"
	// ChangeUpdated means a newer record held a different value that replaced the survivor's.
	ChangeUpdated ChangeKind = "updated"
)

// FieldChange records one field written onto a survivor during a merge.
type FieldChange struct {
	// Field is the field name.
	Field string `json:"field" yaml:"field"`

	// Kind tells whether the field was added or overwritten.
	Kind ChangeKind `json:"kind" yaml:"kind"`

	// Previous is the survivor's value before the change (nil when added).
	Previous any `json:"previous" yaml:"previous"`

	// Value is the value written.
	Value any `json:"value" yaml:"value"`

	// Source is the timestamp of the record the value came from.
	Source string `json:"source" yaml:"source"`
}

// MergeResult is the outcome of merging one bucket.
type MergeResult struct {
	// Record is the survivor: the oldest record of the bucket, mutated.
	Record *record.Record `json:"-" yaml:"-"`

	// Key is the identifying key the bucket was built on.
	Key string `json:"key" yaml:"key"`

	// Value is the shared key value, as a readable string.
	Value string `json:"value" yaml:"value"`

	// Size is the number of records in the bucket.
	Size int `json:"size" yaml:"size"`

	// Oldest is the timestamp of the survivor before the merge.
	Oldest string `json:"oldest" yaml:"oldest"`

	// Changes lists every field added or overwritten, in application order.
	Changes []FieldChange `json:"changes" yaml:"changes"`
}

// Duplicate marks a key value that is still shared by several records.
type Duplicate struct {
	// Key is the identifying key.
	Key string `json:"key" yaml:"key"`

	// Value is the repeated value, as a readable string.
	Value string `json:"value" yaml:"value"`

	// Count is how many records hold the value.
	Count int `json:"count" yaml:"count"`
}

// PassSummary describes one consolidation pass.
type PassSummary struct {
	// Pass is the 1-based pass number.
	Pass int `json:"pass" yaml:"pass"`

	// Input is the number of records the pass started with.
	Input int `json:"input" yaml:"input"`

	// Output is the number of records the pass produced.
	Output int `json:"output" yaml:"output"`

	// Groups lists the merged groups in output order.
	Groups []MergeResult `json:"groups" yaml:"groups"`

	// Remaining lists values still duplicated after the pass.
	Remaining []Duplicate `json:"remaining" yaml:"remaining"`
}

// Summary provides aggregate counts for a whole resolve run.
type Summary struct {
	// InputRecords is the number of records given to Resolve.
	InputRecords int `json:"input_records" yaml:"input_records"`

	// OutputRecords is the number of consolidated records returned.
	OutputRecords int `json:"output_records" yaml:"output_records"`

	// Absorbed counts records folded into another record.
	Absorbed int `json:"absorbed" yaml:"absorbed"`

	// Groups counts merged duplicate groups across all passes.
	Groups int `json:"groups" yaml:"groups"`

	// Passes is the number of passes run, including the final clean one.
	Passes int `json:"passes" yaml:"passes"`

	// FieldChanges counts fields added or overwritten across all merges.
	FieldChanges int `json:"field_changes" yaml:"field_changes"`
}

// Result is the outcome of Resolve.
type Result struct {
	// Records is the consolidated record set.
	Records []*record.Record `json:"-" yaml:"-"`

	// Passes describes each pass in order.
	Passes []PassSummary `json:"passes" yaml:"passes"`

	// Summary aggregates the passes.
	Summary Summary `json:"summary" yaml:"summary"`
}
