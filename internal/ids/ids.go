// Package ids allocates entity identifiers of the form "<prefix>_<n>".
//
// Allocation is a pure function of the current collection contents: the next
// id is one past the highest numeric suffix already in use for the prefix.
// There is no separate counter to keep in sync with the collection.
package ids

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/planboard/pkg/types"
)

// Next returns prefix + "_" + (max + 1), where max is the largest numeric
// suffix among records whose id starts with prefix + "_", or 0 if there are
// none. Ids whose suffix does not parse as an integer are ignored.
func Next[R types.Record](prefix string, records []R) string {
	max := 0
	for _, rec := range records {
		if n, ok := suffix(prefix, rec.RecordID()); ok && n > max {
			max = n
		}
	}
	return prefix + "_" + strconv.Itoa(max+1)
}

func suffix(prefix, id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
