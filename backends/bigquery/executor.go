package bigquery

import (
	"context"
	"database/sql/driver"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	u "github.com/araddon/gou"
	"google.golang.org/api/iterator"

	"github.com/benjiec/gbif-visuals-summary/models"
)

// Execute runs one query job synchronously and materializes the full
// result.  Blocks until the warehouse finishes; any submission,
// execution, or read failure comes back as a models.ExecError.
func (m *Source) Execute(ctx context.Context, sql string) (*models.ResultSet, error) {

	queryStart := time.Now()

	q := m.client.Query(sql)
	job, err := q.Run(ctx)
	if err != nil {
		u.Warnf("could not run %v", err)
		return nil, &models.ExecError{Err: err}
	}

	// Wait until async querying is done.
	status, err := job.Wait(ctx)
	if err != nil {
		u.Warnf("could not run %v", err)
		return nil, &models.ExecError{Err: err}
	}
	if err := status.Err(); err != nil {
		u.Warnf("could not run %v", err)
		return nil, &models.ExecError{Err: err}
	}

	it, err := job.Read(ctx)
	if err != nil {
		return nil, &models.ExecError{Err: err}
	}

	rs := &models.ResultSet{}
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &models.ExecError{Err: err}
		}
		rs.Rows = append(rs.Rows, rowValues(row))
	}

	// Schema is populated once the first page has been fetched, which
	// has happened by now even for an empty result.
	rs.Columns = schemaColumns(it.Schema)

	u.Debugf("finished query, took: %v for %v rows", time.Since(queryStart), rs.RowCount())
	return rs, nil
}

// rowValues converts one bigquery row to driver values, dates become
// UTC timestamps
func rowValues(row []bigquery.Value) []driver.Value {
	vals := make([]driver.Value, len(row))
	for i, v := range row {
		switch v := v.(type) {
		case civil.Date:
			vals[i] = v.In(time.UTC)
		default:
			vals[i] = v
		}
	}
	return vals
}

func schemaColumns(s bigquery.Schema) []string {
	cols := make([]string, 0, len(s))
	for _, f := range s {
		cols = append(cols, f.Name)
	}
	return cols
}
