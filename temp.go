package stationstats

import "errors"

// ErrBadTemperature is returned for temperature fields that do not match
// the expected shape.
var ErrBadTemperature = errors.New("malformed temperature")

// ParseTemp decodes a temperature like "5.0", "41.9" or "-3.2" into tenths
// of a degree. The grammar is deliberately narrow: an optional minus, one
// or two integer digits, a dot, exactly one fractional digit. Anything
// else is rejected rather than routed through a general float parser, so
// the failure boundary is exact and reproducible.
func ParseTemp(b []byte) (int16, error) {
	if len(b) > 0 && b[0] == '-' {
		v, err := parseTenths(b[1:])
		return -v, err
	}
	return parseTenths(b)
}

func parseTenths(b []byte) (int16, error) {
	switch len(b) {
	case 3: // d.d
		if b[1] != '.' || !isDigit(b[0]) || !isDigit(b[2]) {
			return 0, ErrBadTemperature
		}
		return int16(b[0]-'0')*10 + int16(b[2]-'0'), nil
	case 4: // dd.d
		if b[2] != '.' || !isDigit(b[0]) || !isDigit(b[1]) || !isDigit(b[3]) {
			return 0, ErrBadTemperature
		}
		return int16(b[0]-'0')*100 + int16(b[1]-'0')*10 + int16(b[3]-'0'), nil
	}
	return 0, ErrBadTemperature
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
