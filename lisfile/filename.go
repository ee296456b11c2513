package lisfile

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/legumeinfo/lisgraph"
)

// Filename is the decomposition of one dot-segmented datastore filename.
type Filename struct {
	Name   string
	Kind   Kind
	Tokens []string

	// Version is the resolved version token (or the format default).
	Version string

	// Gensp is the organism code token (e.g. "phalu"), when present.
	Gensp string

	// Strain is the strain/accession token (e.g. "G27455"), when present.
	Strain string

	// Assembly and Annotation are the gnm/ann tokens, when present.
	Assembly   string
	Annotation string
}

// Decompose splits a datastore filename on "." and validates the token
// count against the format's layout. Formats with a required version
// either warn and substitute the documented default (gfa) or reject the
// filename outright (hsh), per the datastore's own conventions.
func Decompose(name string, kind Kind) (Filename, error) {
	layout, exists := Layouts[kind]
	if !exists {
		return Filename{}, lisgraph.ParseError{File: name, Msg: fmt.Sprintf("unknown file kind %q", kind)}
	}

	base := strings.TrimSuffix(filepath.Base(name), ".gz")
	tokens := strings.Split(base, ".")

	fn := Filename{
		Name:   name,
		Kind:   kind,
		Tokens: tokens,
	}

	if layout.Tokens > 0 && len(tokens) != layout.Tokens {
		if layout.StrictTokens {
			return Filename{}, lisgraph.ParseError{
				File: name,
				Msg:  fmt.Sprintf("expected %d dot-separated tokens, found %d", layout.Tokens, len(tokens)),
			}
		}

		log.Printf("%s: expected %d dot-separated tokens, found %d; assuming version %s\n", name, layout.Tokens, len(tokens), layout.DefaultVersion)
		fn.Version = layout.DefaultVersion
		fn.fillPositional(tokens)

		return fn, nil
	}

	if layout.VersionIdx >= 0 && layout.VersionIdx < len(tokens) {
		fn.Version = tokens[layout.VersionIdx]
	}
	fn.fillPositional(tokens)

	return fn, nil
}

// fillPositional extracts the conventional organism/assembly tokens:
// gensp.strain.gnmN[.annN]... when the leading tokens follow that shape.
func (fn *Filename) fillPositional(tokens []string) {
	if len(tokens) > 0 {
		fn.Gensp = tokens[0]
	}
	if len(tokens) > 1 {
		fn.Strain = tokens[1]
	}
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "gnm") && fn.Assembly == "":
			fn.Assembly = tok
		case strings.HasPrefix(tok, "ann") && fn.Annotation == "":
			fn.Annotation = tok
		}
	}
}
