// Package util contains small pure helpers shared across layers.
package util

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxRoman is the largest year the numeral table can express.
const MaxRoman = 3999

// ErrOutOfRange is returned for years the numeral table cannot express.
var ErrOutOfRange = errors.New("roman numeral out of range")

var romanTable = map[int]string{
	1: "I", 2: "II", 3: "III", 4: "IV", 5: "V", 6: "VI", 7: "VII", 8: "VIII", 9: "IX",
	10: "X", 20: "XX", 30: "XXX", 40: "XL", 50: "L", 60: "LX", 70: "LXX", 80: "LXXX", 90: "XC",
	100: "C", 200: "CC", 300: "CCC", 400: "CD", 500: "D", 600: "DC", 700: "DCC", 800: "DCCC", 900: "CM",
	1000: "M", 2000: "MM", 3000: "MMM",
}

// ToRoman converts year into its Roman numeral. Zero yields an empty string.
func ToRoman(year int) (string, error) {
	if year < 0 || year > MaxRoman {
		return "", errors.Wrapf(ErrOutOfRange, "year %d", year)
	}

	digits := strconv.Itoa(year)
	parts := make([]string, 0, len(digits))

	// Walk from the least significant digit, collecting parts in reverse.
	power := 1
	for i := len(digits) - 1; i >= 0; i-- {
		if d := int(digits[i] - '0'); d != 0 {
			parts = append(parts, romanTable[d*power])
		}
		power *= 10
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}

	return b.String(), nil
}
