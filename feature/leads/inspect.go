package leads

import (
	"context"
	"strconv"

	"lead-consolidator/core/dedupe"
	"lead-consolidator/core/output"

	"go.uber.org/zap"
)

// Inspection lists the key values shared by more than one record in a leads
// file, before any merging.
type Inspection struct {
	Input      string             `json:"input" yaml:"input"`
	Records    int                `json:"records" yaml:"records"`
	Keys       []string           `json:"keys" yaml:"keys"`
	Duplicates []dedupe.Duplicate `json:"duplicates" yaml:"duplicates"`
}

// Clean reports whether the file has no duplicates under any key.
func (i *Inspection) Clean() bool {
	return len(i.Duplicates) == 0
}

// Inspect reads input and reports duplicated key values without merging.
func (s *Service) Inspect(ctx context.Context, input string) (*Inspection, error) {
	if err := s.opts.Validate(); err != nil {
		return nil, err
	}

	records, err := s.client.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	dups := dedupe.FindDuplicates(records, s.opts.Keys, s.opts.SkipMissing)
	s.logger.Info("Inspected leads",
		zap.String("input", input),
		zap.Int("records", len(records)),
		zap.Int("duplicates", len(dups)))

	return &Inspection{
		Input:      input,
		Records:    len(records),
		Keys:       s.opts.Keys,
		Duplicates: dups,
	}, nil
}

// Tables lays the inspection out as one row per duplicated value.
func (i *Inspection) Tables() []output.Data {
	rows := make([][]string, 0, len(i.Duplicates))
	for _, d := range i.Duplicates {
		rows = append(rows, []string{d.Key, d.Value, strconv.Itoa(d.Count)})
	}
	return []output.Data{{
		Title:   i.Input + ": " + strconv.Itoa(i.Records) + " records, " + strconv.Itoa(len(i.Duplicates)) + " duplicated values",
		Headers: []string{"Key", "Value", "Count"},
		Rows:    rows,
	}}
}
