// Package convert turns Legume Information System datastore file sets
// into a normalized entity graph. Each format is one Converter strategy
// selected by filename suffix; a Run owns the per-run registries and
// shared context, enforces the metadata-before-data state machine, and
// only hands entities to the sink after finalize succeeds.
package convert

import (
	"fmt"
	"io"

	"github.com/legumeinfo/lisgraph/lisfile"
)

// Converter is one file-format strategy. A Converter instance is
// run-scoped: it may carry parsing state (such as the active
// score-meaning label) between lines and files of one run.
type Converter interface {
	Kind() lisfile.Kind

	// RequiresMetadata reports whether the format cannot finalize
	// without a README record.
	RequiresMetadata() bool

	// RequiredKeys names the README keys that must be present for this
	// format.
	RequiredKeys() []string

	// Scan consumes one data file, creating and mutating entities
	// through the run's registry. Any returned error is fatal to the run.
	Scan(name string, r io.Reader, run *Run) error
}

// ForKind returns a fresh run-scoped converter for a format.
func ForKind(kind lisfile.Kind) (Converter, error) {
	switch kind {
	case lisfile.KindGFA:
		return &GFA{}, nil
	case lisfile.KindHSH:
		return &HSH{}, nil
	case lisfile.KindPathway:
		return &Pathway{}, nil
	case lisfile.KindPhenotype:
		return &Phenotype{}, nil
	case lisfile.KindDescriptor:
		return &Descriptor{}, nil
	case lisfile.KindMatch:
		return &Match{}, nil
	case lisfile.KindVCF:
		return &VCF{}, nil
	}

	return nil, fmt.Errorf("no converter for file kind %q", kind)
}

// ForFile selects a converter by filename suffix.
func ForFile(name string) (Converter, error) {
	kind, ok := lisfile.KindOf(name)
	if !ok {
		return nil, fmt.Errorf("%s: no converter claims this filename", name)
	}

	return ForKind(kind)
}
