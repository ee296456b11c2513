package lisgraph

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{
			ParseError{File: "a.gfa.tsv", Line: 3, Msg: "expected 2 fields, found 3"},
			"a.gfa.tsv: line 3: expected 2 fields, found 3",
		},
		{
			ParseError{File: "a.gfa.tsv", Msg: "invalid header"},
			"a.gfa.tsv: invalid header",
		},
		{
			ValidationError{File: "a.gfa.tsv", Line: 2, Field: "gene"},
			"a.gfa.tsv: empty gene identifier at line 2",
		},
		{
			ValidationError{File: "a.vcf", Line: 5, Record: true, Field: "contig"},
			"a.vcf: empty contig identifier at record 5",
		},
		{
			MissingMetadataError{File: "a.vcf"},
			"a.vcf: metadata record is required but was not loaded",
		},
		{
			MissingMetadataError{File: "README.yml", Key: "identifier"},
			`README.yml: required metadata key "identifier" is absent`,
		},
		{
			UnsupportedRecordTypeError{File: "a.gff", Line: 7, Type: "polypeptide_motif"},
			`a.gff: line 7: unsupported record type "polypeptide_motif"`,
		},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
