// Command stationstats prints per-station min/mean/max temperatures for a
// measurements file, one sorted line on stdout, diagnostics on stderr.
//
// data:
//
//	Tamale;27.5
//	Bergen;9.6
//	Lodwar;37.1
//	Whitehorse;-3.8
//	Ouarzazate;19.1
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/miku/stationstats"
)

var (
	numWorkers = flag.Int("w", runtime.NumCPU(), "number of parallel workers")
	cpuprofile = flag.String("cpuprofile", "", "file to write cpu profile to")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	fn := "measurements.txt"
	if flag.NArg() > 0 {
		fn = flag.Arg(0)
	}
	in, err := stationstats.OpenInput(fn)
	if err != nil {
		log.Fatalf("input %s: %v", fn, err)
	}
	defer in.Close()
	err = stationstats.Run(in.Bytes(), os.Stdout, stationstats.Options{
		Workers: *numWorkers,
	})
	if err != nil {
		log.Fatal(err)
	}
}
