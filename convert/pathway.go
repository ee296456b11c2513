package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
)

// Pathway converts pathway membership tables: pathwayIdentifier,
// pathwayName, geneIdentifier. Two-field rows are header noise and are
// ignored.
type Pathway struct{}

func (c *Pathway) Kind() lisfile.Kind { return lisfile.KindPathway }

func (c *Pathway) RequiresMetadata() bool { return true }

func (c *Pathway) RequiredKeys() []string { return []string{"identifier"} }

func (c *Pathway) Scan(name string, r io.Reader, run *Run) error {
	layout := lisfile.Layouts[lisfile.KindPathway]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), scanBufferSize)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		class, fields := lisfile.Classify(scanner.Text(), layout.DataThreshold)
		if class != lisfile.LineData {
			continue
		}

		pathwayID := strings.TrimSpace(fields[0])
		pathwayName := strings.TrimSpace(fields[1])
		geneID := strings.TrimSpace(fields[2])
		if pathwayID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "pathway"}
		}
		if geneID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "gene"}
		}

		pathway := run.reg.Pathway(pathwayID)
		if pathwayName != "" {
			pathway.Name = null.StringFrom(pathwayName)
		}

		gene := run.reg.Gene(geneID)
		pathway.AddGene(gene)
		gene.AddPathway(pathway)

		run.countData(name)
	}

	if err := scanner.Err(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
