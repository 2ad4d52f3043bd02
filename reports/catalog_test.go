package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {

	c := NewCatalog("")
	assert.Equal(t, 8, len(c))

	files := make([]string, 0, len(c))
	seen := make(map[string]bool)
	for _, r := range c {
		files = append(files, r.File)
		assert.False(t, seen[r.File], "duplicate file name %q", r.File)
		seen[r.File] = true
		assert.True(t, strings.Contains(r.SQL, "`"+DefaultTable+"`"), "%s missing table", r.File)
		assert.True(t, strings.Contains(r.SQL, "occurrencestatus = 'PRESENT'"), "%s missing status filter", r.File)
	}

	assert.Equal(t, []string{
		"phyla.csv",
		"classes.csv",
		"orders.csv",
		"families.csv",
		"genera.csv",
		"phyla-country.csv",
		"species.csv",
		"kingdom.csv",
	}, files)
}

func TestCatalogTableOverride(t *testing.T) {

	c := NewCatalog("my-project.sandbox.occurrences")
	for _, r := range c {
		assert.True(t, strings.Contains(r.SQL, "`my-project.sandbox.occurrences`"), r.File)
		assert.False(t, strings.Contains(r.SQL, DefaultTable), r.File)
	}
}

func TestCatalogTopN(t *testing.T) {

	c := NewCatalog("")
	byFile := make(map[string]string, len(c))
	for _, r := range c {
		byFile[r.File] = r.SQL
	}

	// top-3 countries per phylum, rank retained in the projection
	pc := byFile["phyla-country.csv"]
	assert.True(t, strings.Contains(pc, "ROW_NUMBER() OVER (PARTITION BY phylum"))
	assert.True(t, strings.Contains(pc, "rank <= 3"))

	// top-5 species per genus, rank dropped from the projection
	sp := byFile["species.csv"]
	assert.True(t, strings.Contains(sp, "ROW_NUMBER() OVER (PARTITION BY genus"))
	assert.True(t, strings.Contains(sp, "rank <= 5"))

	// unnamed kingdoms get a default label
	assert.True(t, strings.Contains(byFile["kingdom.csv"], "COALESCE(kingdom, 'incertae sedis')"))
}
