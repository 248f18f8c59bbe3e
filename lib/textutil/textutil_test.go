package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdinal(t *testing.T) {
	cases := []struct {
		num    int
		expect string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{101, "101st"},
		{111, "111th"},
		{0, "0"},
		{-3, "-3"},
	}

	for _, test := range cases {
		require.Equal(t, test.expect, Ordinal(test.num))
	}
}

func TestStripPunctuation(t *testing.T) {
	cases := []struct {
		in     string
		expect string
	}{
		{"re-signed", "re-signed"},
		{"traded.", "traded"},
		{"the heat (miami) signed, then waived", "the heat miami signed then waived"},
		{"", ""},
	}

	for _, test := range cases {
		require.Equal(t, test.expect, StripPunctuation(test.in))
	}
}
