package convert

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
)

// ontologyRef matches ontology term references embedded in free text,
// e.g. GO:0005634 or IPR:000719.
var ontologyRef = regexp.MustCompile(`[A-Z][A-Za-z]*:\d{4,}`)

// Descriptor converts family descriptor tables: identifier plus a
// free-text description that may embed ontology term references, which
// are extracted as opaque term links.
type Descriptor struct{}

func (c *Descriptor) Kind() lisfile.Kind { return lisfile.KindDescriptor }

func (c *Descriptor) RequiresMetadata() bool { return false }

func (c *Descriptor) RequiredKeys() []string { return nil }

func (c *Descriptor) Scan(name string, r io.Reader, run *Run) error {
	layout := lisfile.Layouts[lisfile.KindDescriptor]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), scanBufferSize)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		class, fields := lisfile.Classify(scanner.Text(), layout.DataThreshold)
		if class != lisfile.LineData {
			continue
		}

		famID := strings.TrimSpace(fields[0])
		if famID == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "gene family"}
		}

		fam := run.reg.GeneFamily(famID)
		desc := strings.TrimSpace(fields[1])
		if desc != "" {
			fam.Description = null.StringFrom(desc)
		}

		for _, ref := range ontologyRef.FindAllString(desc, -1) {
			term := run.reg.OntologyTerm(ref)
			ann := run.reg.OntologyAnnotation(famID, ref)
			ann.GeneFamily = fam
			ann.Term = term
		}

		run.countData(name)
	}

	if err := scanner.Err(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
