package common

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

var limitDecoder = regexp.MustCompile(`^([0-9_]+)([kMGTPE]*)$`)

// DecodeLimit parses a count such as "10_000", "100k" or "1G". Each suffix
// letter multiplies by its power of ten, so "1kM" is 10^9.
func DecodeLimit(limitString string, verbose bool) (uint64, error) {
	pieces := limitDecoder.FindStringSubmatch(strings.TrimSpace(limitString))
	if pieces == nil {
		return 0, fmt.Errorf("unrecognized limit %q", limitString)
	}
	limit, err := strconv.ParseUint(strings.ReplaceAll(pieces[1], "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("limit %q: %w", limitString, err)
	}
	for _, s := range pieces[2] {
		var scale uint64
		switch s {
		case 'k':
			scale = 1_000
		case 'M':
			scale = 1_000_000
		case 'G':
			scale = 1_000_000_000
		case 'T':
			scale = 1_000_000_000_000
		case 'P':
			scale = 1_000_000_000_000_000
		case 'E':
			scale = 1_000_000_000_000_000_000
		}
		if limit != 0 && limit > ^uint64(0)/scale {
			return 0, fmt.Errorf("limit %q overflows", limitString)
		}
		limit *= scale
	}
	if verbose {
		if limit >= 1_000_000_000_000_000 {
			log.Printf(`Limit: %.1fP`, float64(limit)/1e15)
		} else if limit >= 1_000_000_000_000 {
			log.Printf(`Limit: %.1fT`, float64(limit)/1e12)
		} else if limit >= 1_000_000_000 {
			log.Printf(`Limit: %.1fG`, float64(limit)/1e9)
		} else if limit >= 1_000_000 {
			log.Printf(`Limit: %.1fM`, float64(limit)/1e6)
		} else {
			log.Printf("Limit: %d", limit)
		}
	}
	return limit, nil
}
