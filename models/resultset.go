package models

import "database/sql/driver"

// ResultSet is one fully materialized query result: the column schema,
// established once per query, plus rows in result order.  Cells use the
// sql/driver value types (string, int64, float64, bool, time.Time, nil).
type ResultSet struct {
	Columns []string
	Rows    [][]driver.Value
}

// RowCount count of data rows, not including the header
func (rs *ResultSet) RowCount() int { return len(rs.Rows) }
