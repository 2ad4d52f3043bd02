// package reports defines the fixed catalog of gbif aggregation reports
// and the sequential runner that materializes them.
package reports

import "fmt"

// DefaultTable is the public GBIF occurrence table the catalog targets
// unless a sandbox copy is configured.
const DefaultTable = "bigquery-public-data.gbif.occurrences"

// Report pairs an output file name with the SQL that fills it.
type Report struct {
	File string
	SQL  string
}

// Catalog is an ordered set of reports, file names unique, SQL fixed
// once built.  Adding a report means adding an entry here, nothing else
// changes.
type Catalog []Report

// NewCatalog builds the eight taxonomic aggregation reports against the
// given occurrence table (DefaultTable when empty).
func NewCatalog(table string) Catalog {
	if table == "" {
		table = DefaultTable
	}
	return Catalog{
		{File: "phyla.csv", SQL: fmt.Sprintf(phylaSQL, table)},
		{File: "classes.csv", SQL: fmt.Sprintf(classesSQL, table)},
		{File: "orders.csv", SQL: fmt.Sprintf(ordersSQL, table)},
		{File: "families.csv", SQL: fmt.Sprintf(familiesSQL, table)},
		{File: "genera.csv", SQL: fmt.Sprintf(generaSQL, table)},
		{File: "phyla-country.csv", SQL: fmt.Sprintf(phylaCountrySQL, table)},
		{File: "species.csv", SQL: fmt.Sprintf(speciesSQL, table)},
		{File: "kingdom.csv", SQL: fmt.Sprintf(kingdomSQL, table)},
	}
}

const phylaSQL = `
SELECT
  phylum,
  kingdom,
  COUNT(*) as occurrence_count,
  SUM(CAST(individualcount AS INT64)) as individual_count
FROM ` + "`%s`" + `
WHERE phylum IS NOT NULL
  AND occurrencestatus = 'PRESENT'
GROUP BY phylum, kingdom
ORDER BY phylum`

const classesSQL = `
SELECT
  class,
  phylum,
  COUNT(*) as occurrence_count,
  SUM(CAST(individualcount AS INT64)) as individual_count
FROM ` + "`%s`" + `
WHERE class IS NOT NULL
  AND phylum IS NOT NULL
  AND occurrencestatus = 'PRESENT'
GROUP BY class, phylum
ORDER BY class`

const ordersSQL = `
SELECT
  ` + "`order`" + `,
  class,
  COUNT(*) as occurrence_count,
  SUM(CAST(individualcount AS INT64)) as individual_count
FROM ` + "`%s`" + `
WHERE ` + "`order`" + ` IS NOT NULL
  AND class IS NOT NULL
  AND occurrencestatus = 'PRESENT'
GROUP BY ` + "`order`" + `, class
ORDER BY ` + "`order`"

const familiesSQL = `
SELECT
  family,
  ` + "`order`" + `,
  COUNT(*) as occurrence_count,
  SUM(CAST(individualcount AS INT64)) as individual_count
FROM ` + "`%s`" + `
WHERE family IS NOT NULL
  AND ` + "`order`" + ` IS NOT NULL
  AND occurrencestatus = 'PRESENT'
GROUP BY family, ` + "`order`" + `
ORDER BY family`

const generaSQL = `
SELECT
  genus,
  family,
  COUNT(*) as occurrence_count,
  SUM(CAST(individualcount AS INT64)) as individual_count
FROM ` + "`%s`" + `
WHERE genus IS NOT NULL
  AND family IS NOT NULL
  AND occurrencestatus = 'PRESENT'
GROUP BY genus, family
ORDER BY genus`

const phylaCountrySQL = `
WITH RankedPhylaByCountry AS (
  SELECT
    phylum,
    countrycode as country,
    COUNT(*) as occurrence_count,
    ROW_NUMBER() OVER (PARTITION BY phylum ORDER BY COUNT(*) DESC) as rank
  FROM ` + "`%s`" + `
  WHERE phylum IS NOT NULL
    AND countrycode IS NOT NULL
    AND occurrencestatus = 'PRESENT'
  GROUP BY phylum, countrycode
)
SELECT
  phylum,
  country,
  occurrence_count,
  rank
FROM RankedPhylaByCountry
WHERE rank <= 3
ORDER BY phylum, rank`

const speciesSQL = `
WITH SpeciesRanks AS (
  SELECT
    species,
    genus,
    COUNT(*) as occurrence_count,
    SUM(CAST(individualcount AS INT64)) as individual_count,
    ROW_NUMBER() OVER (PARTITION BY genus ORDER BY COUNT(*) DESC) as rank
  FROM ` + "`%s`" + `
  WHERE species IS NOT NULL
    AND genus IS NOT NULL
    AND occurrencestatus = 'PRESENT'
  GROUP BY species, genus
)
SELECT
  species,
  genus,
  occurrence_count,
  individual_count
FROM SpeciesRanks
WHERE rank <= 5
ORDER BY genus, rank`

const kingdomSQL = `
SELECT
  COALESCE(kingdom, 'incertae sedis') as kingdom,
  COUNT(*) as occurrence_count,
  SUM(CAST(individualcount AS INT64)) as individual_count
FROM ` + "`%s`" + `
WHERE occurrencestatus = 'PRESENT'
GROUP BY kingdom
ORDER BY kingdom`
