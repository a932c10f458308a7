package stationstats

import (
	"errors"
	"testing"
)

func TestParseTemp(t *testing.T) {
	tests := []struct {
		in   string
		want int16
	}{
		{"0.0", 0},
		{"-0.0", 0},
		{"5.0", 50},
		{"-3.2", -32},
		{"9.9", 99},
		{"10.0", 100},
		{"41.9", 419},
		{"99.9", 999},
		{"-99.9", -999},
	}
	for _, tc := range tests {
		got, err := ParseTemp([]byte(tc.in))
		if err != nil {
			t.Errorf("ParseTemp(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTemp(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseTempRejects(t *testing.T) {
	malformed := []string{
		"",
		"-",
		"5",
		"5.",
		".5",
		"+5.0",
		"5,0",
		"41.23",  // two fractional digits
		"141.2",  // three integer digits
		"41",     // no decimal point
		"4a.0",
		"a.0",
		"5.a",
		"--5.0",
		" 5.0",
		"5.0 ",
		"5 .0",
	}
	for _, in := range malformed {
		if got, err := ParseTemp([]byte(in)); !errors.Is(err, ErrBadTemperature) {
			t.Errorf("ParseTemp(%q) = %d, %v; want ErrBadTemperature", in, got, err)
		}
	}
}
