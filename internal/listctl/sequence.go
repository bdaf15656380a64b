package listctl

import (
	"fmt"
	"strconv"
	"strings"
)

// NextSequence returns prefix followed by the largest numeric suffix found
// among existing ids plus one, zero-padded to width. Ids without the prefix
// or with a non-numeric suffix are ignored.
//
// The result is computed from a read of the current ids with no lock, so two
// concurrent creators can be handed the same value.
func NextSequence(existing []string, prefix string, width int) string {
	highest := 0
	for _, id := range existing {
		id = strings.TrimSpace(id)
		if len(id) <= len(prefix) || !strings.EqualFold(id[:len(prefix)], prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, width, highest+1)
}
