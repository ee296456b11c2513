package sink

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

// Warehouse table columns, in insert order. Column names match the db
// tags on the row structs.
var tableColumns = map[string][]string{
	"organism":            {"abbreviation", "taxon_id", "name"},
	"strain":              {"identifier", "organism"},
	"data_source":         {"name", "url", "description"},
	"data_set":            {"name", "synopsis", "description", "url", "licence", "version", "data_source", "publication"},
	"publication":         {"doi", "title"},
	"gene_family":         {"identifier", "version", "description", "size", "data_set"},
	"pan_gene_set":        {"identifier", "version", "data_set"},
	"gene":                {"primary_identifier", "secondary_identifier", "score", "score_meaning", "gene_family", "pan_gene_set", "organism", "strain", "data_set"},
	"protein":             {"primary_identifier", "secondary_identifier", "score", "score_meaning", "gene_family", "pan_gene_set", "organism", "strain", "data_set"},
	"genotyping_study":    {"identifier", "synopsis", "description", "contributors", "accession", "platform", "data_set"},
	"genotyping_sample":   {"identifier", "study", "organism", "strain", "data_set"},
	"genetic_marker":      {"identifier", "chromosome", "start", "end", "organism", "strain", "data_set"},
	"genotyping_record":   {"identifier", "ref", "alt", "qual", "filter", "info", "marker", "study"},
	"genotype":            {"sample", "record", "value", "likelihoods"},
	"protein_match":       {"primary_identifier", "source", "accession", "status", "date", "signature_desc", "protein", "start", "end", "data_set"},
	"protein_hmm_match":   {"primary_identifier", "source", "accession", "status", "date", "signature_desc", "protein", "start", "end", "data_set"},
	"pathway":             {"identifier", "name", "data_set"},
	"pathway_gene":        {"pathway", "gene"},
	"phenotype":           {"primary_identifier", "organism", "strain", "data_set"},
	"ontology_term":       {"identifier"},
	"ontology_annotation": {"term", "phenotype", "gene_family"},
	"chromosome":          {"secondary_identifier", "organism", "strain"},
}

func columnType(col string) string {
	switch col {
	case "score", "qual":
		return "REAL"
	case "size", "start", "end":
		return "INTEGER"
	}
	return "TEXT"
}

// SQLite bulk-loads the finished graph into a SQLite warehouse file.
type SQLite struct {
	db *sqlx.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	for table, cols := range tableColumns {
		defs := make([]string, 0, len(cols))
		for _, col := range cols {
			defs = append(defs, fmt.Sprintf("%q %s", col, columnType(col)))
		}
		ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", table, strings.Join(defs, ", "))
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, pfx.Err(err)
		}
	}

	return &SQLite{db: db}, nil
}

func insertStatement(table string) string {
	cols := tableColumns[table]
	quoted := make([]string, 0, len(cols))
	named := make([]string, 0, len(cols))
	for _, col := range cols {
		quoted = append(quoted, fmt.Sprintf("%q", col))
		named = append(named, ":"+col)
	}

	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", table, strings.Join(quoted, ", "), strings.Join(named, ", "))
}

func (s *SQLite) Store(rows interface{}) error {
	table, out, err := Rows(rows)
	if err != nil {
		return err
	}

	slice := reflect.ValueOf(out)
	if slice.Len() == 0 {
		return nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	insert := insertStatement(table)
	for i := 0; i < slice.Len(); i++ {
		if _, err := tx.NamedExec(insert, slice.Index(i).Interface()); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
