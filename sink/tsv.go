package sink

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// TSV writes one tab-delimited file per warehouse table into a directory,
// suitable for bulk COPY loading.
type TSV struct {
	dir string
}

func NewTSV(dir string) (*TSV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, pfx.Err(err)
	}

	// Tell gocsv to emit tabs rather than commas
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})

	return &TSV{dir: dir}, nil
}

func (t *TSV) Store(rows interface{}) error {
	table, out, err := Rows(rows)
	if err != nil {
		return err
	}
	if reflect.ValueOf(out).Len() == 0 {
		return nil
	}

	f, err := os.Create(filepath.Join(t.dir, table+".tsv"))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(out, f); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func (t *TSV) Close() error {
	return nil
}
