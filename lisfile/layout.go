// Package lisfile decomposes Legume Information System datastore file
// names and record lines according to the per-format conventions of the
// datastore.
package lisfile

import "strings"

// Kind identifies one datastore file format.
type Kind string

const (
	// KindGFA is a gene-family association table (gene, family, protein, score).
	KindGFA Kind = "gfa"
	// KindHSH is a pan-gene-set hash association table (set, protein).
	KindHSH Kind = "hsh"
	// KindPathway is a pathway membership table.
	KindPathway Kind = "pathway"
	// KindPhenotype is a phenotype / ontology-term table.
	KindPhenotype Kind = "phen"
	// KindMatch is a GFF3-convention protein feature-match table.
	KindMatch Kind = "match"
	// KindVCF is a variant-call genotyping file.
	KindVCF Kind = "vcf"
	// KindDescriptor is a family free-text descriptor table.
	KindDescriptor Kind = "descriptor"
)

// Layout captures the file-naming and line-shape conventions of one
// datastore format: how many dot-separated filename tokens to expect,
// where the version token sits, whether a token-count mismatch is fatal,
// and the tab-field count above which a line is a data row.
type Layout struct {
	// Tokens is the expected dot-separated token count of the filename.
	Tokens int

	// VersionIdx is the 0-based position of the version token, or -1
	// when the format carries no version.
	VersionIdx int

	// StrictTokens rejects a filename with the wrong token count instead
	// of substituting DefaultVersion.
	StrictTokens bool

	// DefaultVersion is substituted (with a warning) when a
	// non-strict filename does not carry the expected token count.
	DefaultVersion string

	// DataThreshold is the tab-split field count a line must exceed to
	// be treated as a data row.
	DataThreshold int

	// Suffixes are the filename endings that select this format, tried
	// before and after stripping a trailing ".gz".
	Suffixes []string
}

var Layouts = map[Kind]Layout{
	KindGFA: {
		Tokens:         9,
		VersionIdx:     5,
		DefaultVersion: "legfed_v1_0",
		DataThreshold:  2,
		Suffixes:       []string{".gfa.tsv"},
	},
	KindHSH: {
		Tokens:        6,
		VersionIdx:    1,
		StrictTokens:  true,
		DataThreshold: 1,
		Suffixes:      []string{".hsh.tsv"},
	},
	KindPathway: {
		Tokens:        0,
		VersionIdx:    -1,
		DataThreshold: 2,
		Suffixes:      []string{"pathway.tsv"},
	},
	KindPhenotype: {
		Tokens:        0,
		VersionIdx:    -1,
		DataThreshold: 1,
		Suffixes:      []string{".phen.tsv"},
	},
	KindMatch: {
		Tokens:        0,
		VersionIdx:    -1,
		DataThreshold: 8,
		Suffixes:      []string{".gff", ".gff3"},
	},
	KindVCF: {
		Tokens:     0,
		VersionIdx: -1,
		Suffixes:   []string{".vcf"},
	},
	KindDescriptor: {
		Tokens:        0,
		VersionIdx:    -1,
		DataThreshold: 1,
		Suffixes:      []string{".info_descriptors.tsv"},
	},
}

// KindOf resolves the format of a datastore filename by suffix. The
// second return is false when no format claims the name.
func KindOf(name string) (Kind, bool) {
	trimmed := strings.TrimSuffix(name, ".gz")
	for kind, layout := range Layouts {
		for _, suffix := range layout.Suffixes {
			if strings.HasSuffix(trimmed, suffix) {
				return kind, true
			}
		}
	}

	return "", false
}
