package chudnovsky

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"

	"github.com/BurntSushi/toml"

	"NameInPi/mp"
)

// ErrChecksum reports that the low digits of a computed value disagree with
// the known table.
var ErrChecksum = errors.New("checksum mismatch")

//go:embed checksums.toml
var checksumData string

var checksums = mustLoadChecksums(checksumData)

type checksumFile struct {
	Checksum []struct {
		Digits int    `toml:"digits"`
		Last5  uint64 `toml:"last5"`
	} `toml:"checksum"`
}

func mustLoadChecksums(data string) map[int]uint64 {
	table, err := loadChecksums(data)
	if err != nil {
		panic(err)
	}
	return table
}

func loadChecksums(data string) (map[int]uint64, error) {
	var f checksumFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("checksum table: %w", err)
	}
	table := make(map[int]uint64, len(f.Checksum))
	for _, c := range f.Checksum {
		if c.Digits < 1 || c.Last5 >= 100_000 {
			return nil, fmt.Errorf("checksum table: bad entry digits=%d last5=%d", c.Digits, c.Last5)
		}
		table[c.Digits] = c.Last5
	}
	return table, nil
}

// Checksum returns the last five digits of floor(pi * 10^d) if they are known.
func Checksum(d int) (uint64, bool) {
	v, ok := checksums[d]
	return v, ok
}

// ChecksumDigits lists the digit counts that have a known checksum, ascending.
func ChecksumDigits() []int {
	return slices.Sorted(maps.Keys(checksums))
}

// Verify checks pi, the result of Pi(d), against the checksum table. Digit
// counts without an entry always pass.
func Verify(pi *big.Int, d int) error {
	want, ok := Checksum(d)
	if !ok {
		return nil
	}
	if got := mp.LastDigits(pi, 5); got != want {
		return fmt.Errorf("%w: %d digits end in %05d, want %05d", ErrChecksum, d, got, want)
	}
	return nil
}
