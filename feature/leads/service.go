package leads

import (
	"context"
	"fmt"
	"time"

	"lead-consolidator/core/dedupe"
	"lead-consolidator/core/record"
	"lead-consolidator/core/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service loads, consolidates and saves lead files.
type Service struct {
	client  store.Client
	logger  *zap.Logger
	changes dedupe.ChangeLog
	opts    dedupe.Options
}

// NewService creates a new leads service. A nil change log discards merge
// entries.
func NewService(client store.Client, logger *zap.Logger, changes dedupe.ChangeLog, opts dedupe.Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if changes == nil {
		changes = dedupe.NopChangeLog()
	}
	return &Service{
		client:  client,
		logger:  logger,
		changes: changes,
		opts:    opts,
	}
}

// Plan reads input and computes the consolidation without writing anything,
// including the change log.
func (s *Service) Plan(ctx context.Context, input string) (*Report, error) {
	report := newReport(input, "", true)
	log := s.logger.With(zap.String("run_id", report.RunID))

	records, err := s.client.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	log.Info("Planning consolidation", zap.String("input", input), zap.Int("records", len(records)))

	if _, err := s.resolve(report, records, dedupe.NopChangeLog()); err != nil {
		return nil, err
	}

	log.Info("Plan ready",
		zap.Int("groups", report.Summary.Groups),
		zap.Int("absorbed", report.Summary.Absorbed))
	return report, nil
}

// Consolidate reads input, merges duplicates and writes the result to output.
// Nothing is written when the records fail to converge.
func (s *Service) Consolidate(ctx context.Context, input, output string) (*Report, error) {
	report := newReport(input, output, false)
	log := s.logger.With(zap.String("run_id", report.RunID))

	records, err := s.client.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	log.Info("Consolidating leads", zap.String("input", input), zap.Int("records", len(records)))
	s.changes.Record("consolidation started",
		zap.String("run_id", report.RunID),
		zap.String("input", input),
		zap.Int("records", len(records)))

	consolidated, err := s.resolve(report, records, s.changes)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.client.Save(ctx, output, consolidated); err != nil {
		return nil, err
	}

	s.changes.Record("consolidation finished",
		zap.String("run_id", report.RunID),
		zap.String("output", output),
		zap.Int("records", len(consolidated)))
	log.Info("Consolidation complete, output written",
		zap.String("output", output),
		zap.Int("records", len(consolidated)),
		zap.Int("passes", report.Summary.Passes))
	return report, nil
}

func (s *Service) resolve(report *Report, records []*record.Record, changes dedupe.ChangeLog) ([]*record.Record, error) {
	consolidator, err := dedupe.New(s.opts, changes)
	if err != nil {
		return nil, err
	}

	result, err := consolidator.Resolve(records)
	if err != nil {
		return nil, fmt.Errorf("failed to consolidate %s: %w", report.Input, err)
	}

	report.Summary = result.Summary
	report.Passes = result.Passes
	report.Leads = result.Records
	report.Columns = append(append([]string{}, s.opts.Keys...), s.opts.TimestampField)
	report.Finished = time.Now().UTC()
	return result.Records, nil
}

func newReport(input, output string, dryRun bool) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Input:   input,
		Output:  output,
		DryRun:  dryRun,
		Started: time.Now().UTC(),
	}
}
