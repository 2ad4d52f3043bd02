package export

import (
	"database/sql/driver"
	"encoding/csv"
	"time"

	u "github.com/araddon/gou"
	"github.com/araddon/qlbridge/value"
	"github.com/lytics/cloudstorage"

	"github.com/benjiec/gbif-visuals-summary/models"
)

// CSV persists result sets as comma-delimited objects, header line
// first, then one record per row in schema column order.
type CSV struct {
	store cloudstorage.Store
}

func NewCSV(store cloudstorage.Store) *CSV {
	return &CSV{store: store}
}

// Export writes the result set under name, replacing any object from a
// previous run.  Missing directories are created by the store.  A
// partial object may remain on failure, there is no rollback.
func (m *CSV) Export(rs *models.ResultSet, name string) error {

	wc, err := m.store.NewWriter(name, nil)
	if err != nil {
		return &models.ExportError{Err: err}
	}

	w := csv.NewWriter(wc)
	if err := w.Write(rs.Columns); err != nil {
		wc.Close()
		return &models.ExportError{Err: err}
	}

	rec := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		for i := range rec {
			if i < len(row) {
				rec[i] = cellString(row[i])
			} else {
				rec[i] = ""
			}
		}
		if err := w.Write(rec); err != nil {
			wc.Close()
			return &models.ExportError{Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		wc.Close()
		return &models.ExportError{Err: err}
	}
	if err := wc.Close(); err != nil {
		return &models.ExportError{Err: err}
	}

	u.Debugf("wrote %s rows=%d cols=%d", name, rs.RowCount(), len(rs.Columns))
	return nil
}

// cellString renders one result cell, nil becomes an empty field, never
// the literal "null".
func cellString(v driver.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	}
	val := value.NewValue(v)
	if val == nil || val.Nil() {
		return ""
	}
	return val.ToString()
}
