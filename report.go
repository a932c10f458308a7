package stationstats

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport renders the merged table as a single line of the form
//
//	{Bergen=9.6/9.6/9.6, Tamale=27.5/27.5/27.5}
//
// followed by a newline. Names arrive presorted; every value carries
// exactly one fractional digit. Output is buffered and flushed once, write
// errors stick to the buffered writer and surface from Flush.
func WriteReport(w io.Writer, stats map[string]*Stats, names []string) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			bw.WriteString(", ")
		}
		s := stats[name]
		fmt.Fprintf(bw, "%s=%.1f/%.1f/%.1f", name, float64(s.Min)/10, s.Mean(), float64(s.Max)/10)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}
