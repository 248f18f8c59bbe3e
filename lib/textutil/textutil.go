package textutil

import (
	"strconv"
	"strings"
	"unicode"
)

// StripPunctuation removes punctuation from a string, keeping dashes so
// hyphenated words like "re-signed" survive.
func StripPunctuation(s string) string {
	var sb strings.Builder
	for _, c := range s {
		if !unicode.IsPunct(c) || c == '-' {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Ordinal formats a positive integer with its english ordinal suffix
// (1st, 2nd, 3rd, 4th, 11th, 12th, 13th, 21st, ...).
func Ordinal(num int) string {
	if num <= 0 {
		return strconv.Itoa(num)
	}

	switch num % 100 {
	case 11, 12, 13:
		return strconv.Itoa(num) + "th"
	}

	switch num % 10 {
	case 1:
		return strconv.Itoa(num) + "st"
	case 2:
		return strconv.Itoa(num) + "nd"
	case 3:
		return strconv.Itoa(num) + "rd"
	default:
		return strconv.Itoa(num) + "th"
	}
}
