// lisload walks a Legume Information System datastore directory tree,
// groups each collection directory (one README plus its data files) into
// a run, converts every run into a normalized entity graph, and
// bulk-loads the graphs into a SQLite warehouse or per-table TSV files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/convert"
	"github.com/legumeinfo/lisgraph/lisfile"
	"github.com/legumeinfo/lisgraph/sink"
)

// Special value that is to be set using ldflags
// E.g.: go build -ldflags "-X main.builddate=`date -u +%Y-%m-%d:%H:%M:%S%Z`"
var builddate string

func main() {
	fmt.Fprintf(os.Stderr, "This lisload binary was built at: %s\n", builddate)

	var dir, sqlitePath, tsvDir string
	flag.StringVar(&dir, "dir", "", "Path to a datastore collection directory, or a root containing collection directories.")
	flag.StringVar(&sqlitePath, "sqlite", "", "Path to the SQLite warehouse file to load into.")
	flag.StringVar(&tsvDir, "tsv", "", "Directory to write per-table TSV files into (one subdirectory per run).")
	flag.Parse()

	if dir == "" || (sqlitePath == "" && tsvDir == "") {
		flag.PrintDefaults()
		os.Exit(1)
	}

	runs, err := collectRuns(lisgraph.ExpandHome(dir))
	if err != nil {
		log.Fatalln(err)
	}
	if len(runs) == 0 {
		log.Fatalln("No convertible datastore files found under", dir)
	}
	log.Printf("Found %d runs under %s\n", len(runs), dir)

	for _, rd := range runs {
		if err := processRun(rd, sqlitePath, tsvDir); err != nil {
			// One bad record aborts the whole load; partially loaded
			// datasets are worse than a failed load.
			log.Fatalln(err)
		}
	}

	log.Println("Completed")
}

// runDir is one collection directory's worth of input: an optional
// README plus the data files of one format. A directory holding several
// formats yields several runs sharing the README. rel is the directory's
// path relative to the walked root; TSV output is keyed on it so equal
// base names under different parents cannot collide.
type runDir struct {
	dir       string
	rel       string
	kind      lisfile.Kind
	readme    string
	dataFiles []string
}

func collectRuns(root string) ([]runDir, error) {
	readmes := map[string]string{}
	byKind := map[string]map[lisfile.Kind][]string{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		dir := filepath.Dir(path)
		base := filepath.Base(path)

		if isReadme(base) {
			readmes[dir] = path
			return nil
		}

		if kind, ok := lisfile.KindOf(base); ok {
			if byKind[dir] == nil {
				byKind[dir] = map[lisfile.Kind][]string{}
			}
			byKind[dir][kind] = append(byKind[dir][kind], path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	var runs []runDir
	for dir, kinds := range byKind {
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == "." {
			rel = filepath.Base(dir)
		}
		for kind, files := range kinds {
			sort.Strings(files)
			runs = append(runs, runDir{dir: dir, rel: rel, kind: kind, readme: readmes[dir], dataFiles: files})
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].dir != runs[j].dir {
			return runs[i].dir < runs[j].dir
		}
		return runs[i].kind < runs[j].kind
	})

	return runs, nil
}

func isReadme(base string) bool {
	if ext := filepath.Ext(base); ext != ".yml" && ext != ".yaml" {
		return false
	}

	return len(base) > len("README.") && base[:len("README.")] == "README."
}

func processRun(rd runDir, sqlitePath, tsvDir string) error {
	conv, err := convert.ForKind(rd.kind)
	if err != nil {
		return err
	}

	var snk sink.Sink
	if sqlitePath != "" {
		snk, err = sink.OpenSQLite(sqlitePath)
	} else {
		snk, err = sink.NewTSV(filepath.Join(tsvDir, rd.rel+"."+string(rd.kind)))
	}
	if err != nil {
		return err
	}
	defer snk.Close()

	run := convert.NewRun(conv, snk)

	if rd.readme != "" {
		f, err := lisgraph.Open(rd.readme)
		if err != nil {
			return err
		}
		err = run.LoadMetadata(filepath.Base(rd.readme), f)
		f.Close()
		if err != nil {
			return err
		}
	}

	for _, dataFile := range rd.dataFiles {
		log.Println("Scanning", dataFile)
		f, err := lisgraph.Open(dataFile)
		if err != nil {
			return err
		}
		err = run.ScanFile(filepath.Base(dataFile), f)
		f.Close()
		if err != nil {
			return err
		}
	}

	return run.Close()
}
