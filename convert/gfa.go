package convert

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
)

// Scanner buffer large enough for long descriptor and INFO lines.
const scanBufferSize = 4096 * 256

// GFA converts gene-family association tables: one row per (gene, family,
// protein) triple with an optional score column whose meaning is declared
// by interleaved two-field ScoreMeaning rows.
type GFA struct {
	// scoreMeaning is the active score-meaning label; it applies to
	// subsequent data rows until changed.
	scoreMeaning null.String
}

func (c *GFA) Kind() lisfile.Kind { return lisfile.KindGFA }

func (c *GFA) RequiresMetadata() bool { return false }

func (c *GFA) RequiredKeys() []string { return nil }

func (c *GFA) Scan(name string, r io.Reader, run *Run) error {
	fn, err := lisfile.Decompose(name, lisfile.KindGFA)
	if err != nil {
		return err
	}
	layout := lisfile.Layouts[lisfile.KindGFA]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), scanBufferSize)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		class, fields := lisfile.Classify(scanner.Text(), layout.DataThreshold)
		switch class {
		case lisfile.LineSkip:
			continue
		case lisfile.LineHeader:
			if fields[0] == lisfile.ScoreMeaningKey {
				c.scoreMeaning = null.StringFrom(strings.TrimSpace(fields[1]))
			}
			continue
		}

		geneID := strings.TrimSpace(fields[0])
		famID := strings.TrimSpace(fields[1])
		protID := strings.TrimSpace(fields[2])
		if geneID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "gene"}
		}
		if famID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "gene family"}
		}
		if protID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "protein"}
		}

		fam := run.reg.GeneFamily(famID)
		fam.Version = null.StringFrom(fn.Version)

		gene := run.reg.Gene(geneID)
		protein := run.reg.Protein(protID)
		gene.Family = fam
		protein.Family = fam
		fam.AddGene(gene)
		fam.AddProtein(protein)

		if len(fields) > 3 {
			// The score is optional; an unparseable value is tolerated,
			// not fatal.
			if score, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err == nil {
				gene.Score = null.FloatFrom(score)
				gene.ScoreMeaning = c.scoreMeaning
				protein.Score = null.FloatFrom(score)
				protein.ScoreMeaning = c.scoreMeaning
			}
		}

		run.countData(name)
	}

	if err := scanner.Err(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
