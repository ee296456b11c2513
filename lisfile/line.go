package lisfile

import "strings"

// LineClass is the disposition of one raw line of a tab-delimited
// datastore file.
type LineClass int

const (
	// LineSkip covers comments, blank lines, and ragged rows tolerated
	// by the format.
	LineSkip LineClass = iota

	// LineHeader is a recognized two-field meta row that updates
	// run-scoped parsing state and produces no entity.
	LineHeader

	// LineData is a forwardable data row.
	LineData
)

// ScoreMeaningKey is the recognized header key declaring what the score
// column of subsequent data rows represents.
const ScoreMeaningKey = "ScoreMeaning"

// headerKeys are the first-field values that mark a two-field row as a
// meta row rather than data.
var headerKeys = map[string]bool{
	ScoreMeaningKey: true,
}

// Classify applies the shared line rules in order: "#" comments and blank
// lines are skipped; a two-field row whose first field is a recognized
// header key is a header; a row with more than threshold tab-split fields
// is data; anything else is skipped. Ragged rows are not rejected here;
// formats that reject them do so themselves.
func Classify(line string, threshold int) (LineClass, []string) {
	if strings.HasPrefix(line, "#") {
		return LineSkip, nil
	}
	if strings.TrimSpace(line) == "" {
		return LineSkip, nil
	}

	fields := strings.Split(line, "\t")

	if len(fields) == 2 && headerKeys[fields[0]] {
		return LineHeader, fields
	}
	if len(fields) > threshold {
		return LineData, fields
	}

	return LineSkip, fields
}
