package stationstats

import "bytes"

// SplitAfter cuts data into at most n ranges for parallel processing. Each
// range except possibly the last ends right after an occurrence of sep, so
// no record ever straddles two ranges, and the concatenation of all ranges
// is exactly data. Ranges come out close to len(data)/n bytes; when the
// data holds fewer separators than requested there are simply fewer
// ranges, never more than n. Empty data yields one empty range.
func SplitAfter(data []byte, n int, sep byte) [][]byte {
	if n < 1 {
		n = 1
	}
	jump := len(data) / n
	ranges := make([][]byte, 0, n)
	rest := data
	for len(ranges) < n-1 && len(rest) > jump {
		i := bytes.IndexByte(rest[jump:], sep)
		if i < 0 {
			break
		}
		cut := jump + i + 1
		ranges = append(ranges, rest[:cut])
		rest = rest[cut:]
	}
	return append(ranges, rest)
}
