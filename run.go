package stationstats

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configures a run. The zero value means one worker per CPU.
type Options struct {
	// Workers is the degree of parallelism and the number of ranges the
	// input is split into. Values below 1 fall back to runtime.NumCPU().
	Workers int
}

// Run executes the whole pipeline over one input buffer: split into
// ranges, aggregate them in parallel, merge the partial tables and write
// the report to w. Workers share nothing but the read-only buffer and
// their own result slot, the errgroup wait is the single barrier. The
// first error from any range aborts the run after all workers have been
// observed, and no report is written.
func Run(data []byte, w io.Writer, opts Options) error {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	ranges := SplitAfter(data, workers, '\n')
	log.Printf("using %d workers for %d ranges", workers, len(ranges))

	var (
		g      errgroup.Group
		tables = make([]*Table, len(ranges))
		counts = make([]int64, len(ranges))
	)
	for i, r := range ranges {
		i, r := i, r
		final := i == len(ranges)-1
		g.Go(func() error {
			log.Printf("range %d: %d bytes", i, len(r))
			n, t, err := AggregateChunk(r, final)
			if err != nil {
				return fmt.Errorf("range %d: %w", i, err)
			}
			counts[i], tables[i] = n, t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	merged := MergeTables(tables)
	log.Printf("processed %d records, %d stations", total, len(merged))

	if err := WriteReport(w, merged, SortedNames(merged)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
