package reports

import (
	"context"
	"fmt"
	"time"

	u "github.com/araddon/gou"

	"github.com/benjiec/gbif-visuals-summary/models"
)

// Executor runs one SQL statement against the warehouse and returns the
// materialized result.
type Executor interface {
	Execute(ctx context.Context, sql string) (*models.ResultSet, error)
}

// Exporter persists one result set under the given object name.
type Exporter interface {
	Export(rs *models.ResultSet, name string) error
}

// Status of one report within a run.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// ReportRun is the recorded outcome of one catalog entry.
type ReportRun struct {
	File       string
	Status     Status
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Runner materializes every catalog report in order, one query and one
// export in flight at a time.  Fail-fast: the first executor or
// exporter error aborts the remaining reports, files already written
// stay where they are.
type Runner struct {
	catalog Catalog
	exec    Executor
	exp     Exporter
	runs    []ReportRun
}

func NewRunner(catalog Catalog, exec Executor, exp Exporter) *Runner {
	m := &Runner{
		catalog: catalog,
		exec:    exec,
		exp:     exp,
		runs:    make([]ReportRun, len(catalog)),
	}
	for i, r := range catalog {
		m.runs[i] = ReportRun{File: r.File, Status: StatusPending}
	}
	return m
}

// Runs the per-report outcomes recorded so far, in catalog order.
func (m *Runner) Runs() []ReportRun {
	out := make([]ReportRun, len(m.runs))
	copy(out, m.runs)
	return out
}

// Run executes every report in catalog order, returns the first error
// wrapped with the failing report's file name.
func (m *Runner) Run(ctx context.Context) error {

	for i, r := range m.catalog {
		m.runs[i].Status = StatusRunning
		m.runs[i].StartedAt = time.Now()

		u.Infof("executing query for %s", r.File)
		rs, err := m.exec.Execute(ctx, r.SQL)
		if err != nil {
			return m.fail(i, err)
		}

		u.Infof("saving %d rows to %s", rs.RowCount(), r.File)
		if err := m.exp.Export(rs, r.File); err != nil {
			return m.fail(i, err)
		}

		m.runs[i].Status = StatusSuccess
		m.runs[i].FinishedAt = time.Now()
		u.Infof("successfully generated %s", r.File)
	}
	return nil
}

func (m *Runner) fail(i int, err error) error {
	m.runs[i].Status = StatusFailed
	m.runs[i].Err = err
	m.runs[i].FinishedAt = time.Now()
	u.Errorf("report %s failed: %v", m.runs[i].File, err)
	return fmt.Errorf("report %s: %w", m.runs[i].File, err)
}
