// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// This program provides a command line interface to the hash registry.
// It can list the registered algorithms, hash its arguments, or time an
// algorithm over random data and report the throughput.
package main

import (
	cr "crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"leb.io/fasthash"
	_ "leb.io/fasthash/all"
	"leb.io/fasthash/siginfo"
	"leb.io/hrff"
)

var list = flag.Bool("l", false, "list registered algorithms and exit")
var hashf = flag.String("h", "spooky64", "name of hash function")
var size = flag.Int("n", 4*1024*1024, "bytes per trial")
var ntrials = flag.Int("nt", 5, "number of trials")
var seed1 = flag.Uint64("s", 0, "first seed word")
var seed2 = flag.Uint64("s2", 0, "second seed word")
var stream = flag.Bool("st", false, "use the streaming interface")
var chunk = flag.Int("c", 64*1024, "write size for streaming")
var pt = flag.Bool("pt", false, "print summary for each trial")
var verbose = flag.Bool("v", false, "verbose")

var cp = flag.String("cp", "", "write cpu profile to file")
var mp = flag.String("mp", "", "write memory profile to this file")

func tdiff(begin, end time.Time) time.Duration {
	return end.Sub(begin)
}

func seeds() []uint64 {
	switch {
	case *seed2 != 0:
		return []uint64{*seed1, *seed2}
	case *seed1 != 0:
		return []uint64{*seed1}
	}
	return nil
}

func listAlgorithms() {
	for _, name := range fasthash.Algorithms() {
		desc, err := fasthash.Lookup(name)
		if err != nil {
			log.Fatal(err)
		}
		info := desc.Info()
		fmt.Printf("%-12s %8v  seeds=0-%d  %v\n", info.Name, info.Width, info.MaxSeeds, desc.Capabilities())
	}
}

func hashArgs(args []string) {
	for _, arg := range args {
		d, err := fasthash.Hash(*hashf, []byte(arg), seeds()...)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s(%q) = %v\n", *hashf, arg, d)
	}
}

func hashOnce(buf []byte) (fasthash.Digest, error) {
	if !*stream {
		return fasthash.Hash(*hashf, buf, seeds()...)
	}
	s, err := fasthash.Open(*hashf, seeds()...)
	if err != nil {
		return fasthash.Digest{}, err
	}
	for len(buf) > 0 {
		n := *chunk
		if n > len(buf) {
			n = len(buf)
		}
		if err := s.Update(buf[:n]); err != nil {
			return fasthash.Digest{}, err
		}
		buf = buf[n:]
	}
	return s.Final()
}

func f() {
	*pt = !*pt
}

func runTrials() {
	siginfo.SetHandler(f)
	buf := make([]byte, *size)
	if _, err := cr.Read(buf); err != nil {
		log.Fatal(err)
	}

	var first fasthash.Digest
	best := time.Duration(1<<63 - 1)
	tot := time.Duration(0)
	for t := 0; t < *ntrials; t++ {
		start := time.Now()
		d, err := hashOnce(buf)
		stop := time.Now()
		if err != nil {
			log.Fatal(err)
		}
		if t == 0 {
			first = d
			sz := hrff.Int64{V: int64(*size), U: "B"}
			fmt.Printf("%s: %H per trial, %d trials\n", *hashf, sz, *ntrials)
		} else if d != first {
			log.Fatalf("trial %d: digest changed: %v != %v", t, d, first)
		}
		dur := tdiff(start, stop)
		tot += dur
		if dur < best {
			best = dur
		}
		if *pt || *verbose {
			bps := hrff.Float64{V: float64(*size) * (float64(time.Second) / float64(dur)), U: "B/sec"}
			fmt.Printf("    trial %d: %v %h\n", t, dur, bps)
		}
	}
	avg := tot / time.Duration(*ntrials)
	bbps := hrff.Float64{V: float64(*size) * (float64(time.Second) / float64(best)), U: "B/sec"}
	abps := hrff.Float64{V: float64(*size) * (float64(time.Second) / float64(avg)), U: "B/sec"}
	fmt.Printf("%s = %v\n", *hashf, first)
	fmt.Printf("best=%v %h, avg=%v %h\n", best, bbps, avg, abps)
}

func run() {
	if *list {
		listAlgorithms()
		return
	}
	if args := flag.Args(); len(args) > 0 {
		hashArgs(args)
		return
	}
	runTrials()
}

func main() {
	flag.Parse()
	if *mp != "" {
		f, err := os.Create(*mp)
		if err != nil {
			log.Fatal(err)
		}
		run()
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}

	if *cp != "" {
		f, err := os.Create(*cp)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
		run()
		return
	}
	run()
}
