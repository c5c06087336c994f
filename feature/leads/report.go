package leads

import (
	"strconv"
	"time"

	"lead-consolidator/core/dedupe"
	"lead-consolidator/core/output"
	"lead-consolidator/core/record"
	"lead-consolidator/core/utils"
)

// Report describes one consolidation run.
type Report struct {
	RunID    string               `json:"run_id" yaml:"run_id"`
	Input    string               `json:"input" yaml:"input"`
	Output   string               `json:"output,omitempty" yaml:"output,omitempty"`
	DryRun   bool                 `json:"dry_run" yaml:"dry_run"`
	Started  time.Time            `json:"started" yaml:"started"`
	Finished time.Time            `json:"finished" yaml:"finished"`
	Summary  dedupe.Summary       `json:"summary" yaml:"summary"`
	Passes   []dedupe.PassSummary `json:"passes" yaml:"passes"`

	// Columns are the fields shown per lead in the table layout.
	Columns []string `json:"-" yaml:"-"`
	// Leads is the consolidated list, as written (or, for a plan, as it
	// would be written).
	Leads []*record.Record `json:"leads" yaml:"leads"`
}

// Tables lays the report out as a summary table, one row per merged group,
// and one row per consolidated lead.
func (r *Report) Tables() []output.Data {
	dest := r.Output
	if r.DryRun {
		dest = "(dry run)"
	}

	summary := output.Data{
		Title:   "Consolidation " + r.RunID,
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", r.Input},
			{"Output", dest},
			{"Input records", strconv.Itoa(r.Summary.InputRecords)},
			{"Output records", strconv.Itoa(r.Summary.OutputRecords)},
			{"Absorbed", strconv.Itoa(r.Summary.Absorbed)},
			{"Groups merged", strconv.Itoa(r.Summary.Groups)},
			{"Field changes", strconv.Itoa(r.Summary.FieldChanges)},
			{"Passes", strconv.Itoa(r.Summary.Passes)},
			{"Duration", r.Finished.Sub(r.Started).Round(time.Millisecond).String()},
		},
	}

	var rows [][]string
	for _, p := range r.Passes {
		for _, g := range p.Groups {
			rows = append(rows, []string{
				strconv.Itoa(p.Pass),
				g.Key,
				g.Value,
				strconv.Itoa(g.Size),
				g.Oldest,
				strconv.Itoa(len(g.Changes)),
			})
		}
	}
	tables := []output.Data{summary}
	if len(rows) > 0 {
		tables = append(tables, output.Data{
			Title:   "Merged groups",
			Headers: []string{"Pass", "Key", "Value", "Size", "Oldest", "Changes"},
			Rows:    rows,
		})
	}
	if len(r.Leads) > 0 {
		tables = append(tables, r.leadsTable())
	}
	return tables
}

func (r *Report) leadsTable() output.Data {
	headers := append([]string{"#"}, r.Columns...)
	rows := make([][]string, 0, len(r.Leads))
	for i, l := range r.Leads {
		row := []string{strconv.Itoa(i + 1)}
		for _, c := range r.Columns {
			v, ok := l.Get(c)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, utils.ToString(v))
		}
		rows = append(rows, row)
	}
	return output.Data{
		Title:   "Consolidated leads",
		Headers: headers,
		Rows:    rows,
	}
}
