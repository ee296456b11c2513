package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
	"github.com/legumeinfo/lisgraph/model"
)

// Match converts GFF3-convention protein feature-match tables (e.g.
// InterProScan output): nine canonical columns plus a ;-delimited
// attribute list. Only protein_match and protein_hmm_match records are
// modeled; any other feature type is fatal, since silently dropping
// biological records is worse than aborting.
type Match struct{}

func (c *Match) Kind() lisfile.Kind { return lisfile.KindMatch }

func (c *Match) RequiresMetadata() bool { return false }

func (c *Match) RequiredKeys() []string { return nil }

func (c *Match) Scan(name string, r io.Reader, run *Run) error {
	layout := lisfile.Layouts[lisfile.KindMatch]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), scanBufferSize)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		class, fields := lisfile.Classify(scanner.Text(), layout.DataThreshold)
		if class != lisfile.LineData {
			continue
		}

		seqid := strings.TrimSpace(fields[0])
		if seqid == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "protein"}
		}

		attrs := parseGFF3Attributes(fields[8])
		accession := attrs["Name"]
		if accession == "" {
			return lisgraph.ValidationError{File: name, Line: lineNum, Field: "Name attribute"}
		}

		start, err := strconv.Atoi(fields[3])
		if err != nil {
			return lisgraph.ParseError{File: name, Line: lineNum, Msg: fmt.Sprintf("bad start coordinate %q", fields[3])}
		}
		end, err := strconv.Atoi(fields[4])
		if err != nil {
			return lisgraph.ParseError{File: name, Line: lineNum, Msg: fmt.Sprintf("bad end coordinate %q", fields[4])}
		}

		var match *model.ProteinMatch
		key := fmt.Sprintf("%s:%s:%d-%d", seqid, accession, start, end)
		switch fields[2] {
		case "protein_match":
			match = run.reg.ProteinMatch(key)
		case "protein_hmm_match":
			match = &run.reg.ProteinHmmMatch(key).ProteinMatch
		default:
			return lisgraph.UnsupportedRecordTypeError{File: name, Line: lineNum, Type: fields[2]}
		}

		match.Accession = null.StringFrom(accession)
		if source := strings.TrimSpace(fields[1]); source != "" && source != "." {
			match.Source = null.StringFrom(source)
		}
		if v, ok := attrs["status"]; ok {
			match.Status = null.StringFrom(v)
		}
		if v, ok := attrs["date"]; ok {
			match.Date = null.StringFrom(v)
		}
		if v, ok := attrs["signature_desc"]; ok {
			match.SignatureDesc = null.StringFrom(v)
		}

		loc := run.reg.Location(key)
		loc.Start = start
		loc.End = end
		match.Location = loc
		match.Protein = run.reg.Protein(seqid)

		run.countData(name)
	}

	if err := scanner.Err(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// parseGFF3Attributes splits a ;-delimited key=value attribute column.
// Malformed members are skipped rather than rejected; the attribute
// column is free-form beyond the keys we read.
func parseGFF3Attributes(attr string) map[string]string {
	out := map[string]string{}

	for _, member := range strings.Split(attr, ";") {
		member = strings.TrimSpace(member)
		if member == "" {
			continue
		}
		parts := strings.SplitN(member, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = strings.Trim(parts[1], "\"")
	}

	return out
}
