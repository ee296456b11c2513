package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
)

// HSH converts pan-gene-set hash association tables: one row per
// (panGeneSet, protein) pair. Unlike the other tabular formats, hsh
// rejects ragged rows outright, and its filename token count is strict.
type HSH struct{}

func (c *HSH) Kind() lisfile.Kind { return lisfile.KindHSH }

func (c *HSH) RequiresMetadata() bool { return false }

func (c *HSH) RequiredKeys() []string { return nil }

func (c *HSH) Scan(name string, r io.Reader, run *Run) error {
	fn, err := lisfile.Decompose(name, lisfile.KindHSH)
	if err != nil {
		return err
	}
	layout := lisfile.Layouts[lisfile.KindHSH]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), scanBufferSize)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		class, fields := lisfile.Classify(scanner.Text(), layout.DataThreshold)
		if class == lisfile.LineHeader {
			// Recognized header rows carry no pairs; hsh has no use
			// for their values either.
			continue
		}
		if class == lisfile.LineSkip {
			if fields == nil {
				// Comment or blank.
				continue
			}
			return lisgraph.ParseError{File: name, Line: lineNum, Msg: fmt.Sprintf("expected 2 fields, found %d", len(fields))}
		}
		if len(fields) != 2 {
			return lisgraph.ParseError{File: name, Line: lineNum, Msg: fmt.Sprintf("expected 2 fields, found %d", len(fields))}
		}

		setID := strings.TrimSpace(fields[0])
		protID := strings.TrimSpace(fields[1])
		if setID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "pan-gene set"}
		}
		if protID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "protein"}
		}

		pgs := run.reg.PanGeneSet(setID)
		pgs.Version = null.StringFrom(fn.Version)

		protein := run.reg.Protein(protID)
		protein.PanGeneSet = pgs
		pgs.AddProtein(protein)

		// No gene column: synthesize the gene from the protein
		// identifier by dropping the isoform segment.
		gene := run.reg.Gene(lisfile.ParentIdent(protID))
		gene.PanGeneSet = pgs
		pgs.AddGene(gene)

		run.countData(name)
	}

	if err := scanner.Err(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
