package lisfile

import "strings"

// ParentIdent derives the parent of a compound dot-segmented identifier
// by dropping the trailing segment, e.g. a gene identifier from a
// protein/isoform identifier. Identifiers may carry any number of
// segments; an identifier with no dot is returned unchanged.
func ParentIdent(id string) string {
	i := strings.LastIndex(id, ".")
	if i < 0 {
		return id
	}

	return id[:i]
}
