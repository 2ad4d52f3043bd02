package bigquery

import (
	"context"
	"database/sql/driver"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	u "github.com/araddon/gou"
	"github.com/stretchr/testify/assert"
)

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

func TestRowValues(t *testing.T) {

	row := []bigquery.Value{
		"Animalia",
		int64(10),
		nil,
		civil.Date{Year: 2020, Month: time.March, Day: 5},
	}
	vals := rowValues(row)
	assert.Equal(t, []driver.Value{
		"Animalia",
		int64(10),
		nil,
		time.Date(2020, time.March, 5, 0, 0, 0, 0, time.UTC),
	}, vals)
}

func TestSchemaColumns(t *testing.T) {

	s := bigquery.Schema{
		{Name: "kingdom", Type: bigquery.StringFieldType},
		{Name: "occurrence_count", Type: bigquery.IntegerFieldType},
		{Name: "individual_count", Type: bigquery.IntegerFieldType},
	}
	assert.Equal(t, []string{"kingdom", "occurrence_count", "individual_count"}, schemaColumns(s))
	assert.Equal(t, []string{}, schemaColumns(nil))
}

// Integration test, needs a real project + credentials.
//
// export GCEPROJECT=my-project
// export GBIF_KEYFILE=/path/to/sa-key.json    # optional, falls back to ADC
func TestExecuteIntegration(t *testing.T) {

	if gceProject == "" {
		t.Skip("no $GCEPROJECT, skipping bigquery integration test")
	}

	ctx := context.Background()
	src, err := NewSource(ctx, os.Getenv("GBIF_KEYFILE"), "")
	assert.NoError(t, err)
	defer src.Close()

	rs, err := src.Execute(ctx, "SELECT 1 AS n, CAST(NULL AS STRING) AS s")
	assert.NoError(t, err)
	assert.Equal(t, []string{"n", "s"}, rs.Columns)
	assert.Equal(t, 1, rs.RowCount())
	assert.Equal(t, int64(1), rs.Rows[0][0])
	assert.Equal(t, nil, rs.Rows[0][1])
}

func TestNewSourceNoProject(t *testing.T) {

	old := gceProject
	gceProject = ""
	defer func() { gceProject = old }()

	_, err := NewSource(context.Background(), "", "")
	assert.Error(t, err)
}
