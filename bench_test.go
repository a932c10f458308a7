package stationstats

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
)

func benchData(records int) []byte {
	rng := rand.New(rand.NewSource(1))
	stations := []string{"Tamale", "Bergen", "Lodwar", "Whitehorse", "Ouarzazate"}
	var sb strings.Builder
	sb.Grow(records * 16)
	for i := 0; i < records; i++ {
		fmt.Fprintf(&sb, "%s;%s\n", stations[rng.Intn(len(stations))], formatTenths(rng.Intn(1999)-999))
	}
	return []byte(sb.String())
}

func BenchmarkParseTemp(b *testing.B) {
	inputs := [][]byte{[]byte("5.0"), []byte("41.9"), []byte("-3.2"), []byte("-99.9")}
	b.SetBytes(int64(len(inputs[0]) + len(inputs[1]) + len(inputs[2]) + len(inputs[3])))
	for i := 0; i < b.N; i++ {
		for _, in := range inputs {
			if _, err := ParseTemp(in); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAggregateChunk(b *testing.B) {
	data := benchData(100_000)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := AggregateChunk(data, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	data := benchData(1_000_000)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Run(data, io.Discard, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
