package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
)

// Phenotype converts phenotype tables: phenotypeIdentifier,
// ontologyTermIdentifier. Phenotype names are free-form, so the README
// context is mandatory for organism and strain wiring.
type Phenotype struct{}

func (c *Phenotype) Kind() lisfile.Kind { return lisfile.KindPhenotype }

func (c *Phenotype) RequiresMetadata() bool { return true }

func (c *Phenotype) RequiredKeys() []string {
	return []string{"identifier", "taxid", "scientific_name_abbrev", "genotype"}
}

func (c *Phenotype) Scan(name string, r io.Reader, run *Run) error {
	layout := lisfile.Layouts[lisfile.KindPhenotype]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), scanBufferSize)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		class, fields := lisfile.Classify(scanner.Text(), layout.DataThreshold)
		if class != lisfile.LineData {
			continue
		}

		phenID := strings.TrimSpace(fields[0])
		termID := strings.TrimSpace(fields[1])
		if phenID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "phenotype"}
		}
		if termID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "ontology term"}
		}

		phen := run.reg.Phenotype(phenID)
		term := run.reg.OntologyTerm(termID)

		ann := run.reg.OntologyAnnotation(phenID, termID)
		ann.Phenotype = phen
		ann.Term = term

		run.countData(name)
	}

	if err := scanner.Err(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
