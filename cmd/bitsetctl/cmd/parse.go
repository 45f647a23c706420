package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/bitarray"
)

// parseKeys parses "1,3,10-12" into [1 3 10 11 12]. Ranges are inclusive.
// Every key must lie in [0, limit); bounds are checked before a range is
// expanded.
func parseKeys(list string, limit int) ([]int, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}

	var keys []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")

		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", part, err)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q: %w", part, err)
			}
			if end < start {
				return nil, fmt.Errorf("invalid range %q: end before start", part)
			}
		}
		if end >= limit {
			return nil, fmt.Errorf("%w: key %d does not fit %d bits", bitarray.ErrOutOfRange, end, limit)
		}
		for k := start; k <= end; k++ {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
