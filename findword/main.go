package main

import (
	"NameInPi/chudnovsky"
	"NameInPi/common"
	"NameInPi/mp"
	"NameInPi/search"
	"NameInPi/wordcode"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"

	"golang.org/x/text/message"
)

/*
Finds the first place where a word, written as three digit character codes,
turns up in the decimal expansion of pi.

Pi is computed with the Chudnovsky series, first to 100 digits and then to 1,
10, 100, ... digits until the word is found. The offset reported is the index
into the digit string "31415926..." at which the codes for the word start.
*/
func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// exit codes
const (
	exitFound    = 0
	exitNotFound = 1
	exitUsage    = 2
	exitError    = 3
)

func run(args []string, stdout io.Writer) (code int) {
	flags := flag.NewFlagSet("findword", flag.ContinueOnError)
	configFile := flags.String("config", common.DefaultConfigFile, "TOML file with search settings")
	flags.Bool("verbose", false, "verbose output")
	flags.Int("probe", 100, "Digits to try before the powers of ten, 0 to skip")
	flags.Int("max-power", common.MaxPower, "Largest power of ten digit count to try")
	flags.String("limit", "", "Largest digit count to compute. Can use k, M, G, T, P and E as power of ten")
	flags.Int("threads", runtime.NumCPU(), "Number of threads to use for the series")
	flags.Int64("threshold", chudnovsky.DefaultThreshold, "Smallest term range split across threads")
	flags.Int("fft", mp.DefaultFFTThreshold, "Operand bits at which to use FFT multiplication, 0 to disable")
	flags.String("report", "", "write the attempts as JSON to this file")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to file")
	memProfile := flags.String("memprofile", "", "write memory profile to file")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(flags.Output(), "usage: findword [flags] word\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		log.Print(err)
		return exitError
	}
	applyFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		log.Print(err)
		return exitUsage
	}

	pattern, err := wordcode.Compile(flags.Arg(0))
	if err != nil {
		log.Printf("can't search for %q: %v", flags.Arg(0), err)
		return exitUsage
	}

	limit := 0
	if cfg.Search.Limit != "" {
		l, err := common.DecodeLimit(cfg.Search.Limit, cfg.Output.Verbose)
		if err != nil {
			log.Print(err)
			return exitUsage
		}
		limit = int(min(l, uint64(1)<<62))
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Print(err)
			return exitError
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Print(err)
			_ = f.Close()
			return exitError
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}
	defer func() {
		if *memProfile != "" {
			if err := writeHeapProfile(*memProfile); err != nil {
				log.Print(err)
				code = exitError
			}
		}
	}()

	mp.SetFFTThreshold(cfg.Compute.FFTThreshold)

	p := message.NewPrinter(message.MatchLanguage("en"))
	if cfg.Output.Verbose {
		log.Printf("searching for %v with %d threads", pattern, cfg.Compute.Threads)
	}

	s := &search.Searcher{
		Splitter: &chudnovsky.Splitter{
			Workers:   cfg.Compute.Threads - 1,
			Threshold: cfg.Compute.Threshold,
		},
		Probe:    cfg.Search.Probe,
		MaxPower: cfg.Search.MaxPower,
		Limit:    limit,
		Verbose:  cfg.Output.Verbose,
	}
	first := true
	s.OnAttempt = func(a search.Attempt, pi *big.Int) {
		if first && a.Digits == cfg.Search.Probe {
			// the probe result is small enough to show in full
			_, _ = fmt.Fprintln(stdout, pi)
			if cfg.Output.Verbose {
				log.Printf("pi = %s", chudnovsky.Fixed(pi, a.Digits))
			}
		} else {
			_, _ = p.Fprintf(stdout, "chudnovsky: digits %d time %s\n", a.Digits, a.Seconds)
		}
		first = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := s.Run(ctx, pattern)
	if err != nil {
		log.Print(err)
		return exitError
	}

	if cfg.Output.Report != "" {
		if err := writeReport(cfg.Output.Report, result); err != nil {
			log.Print(err)
			return exitError
		}
	}

	if result.Status != search.Found {
		_, _ = p.Fprintf(stdout, "%s was not found in the first %d digits of pi\n", pattern.Word(), lastDigits(result))
		return exitNotFound
	}
	_, _ = fmt.Fprintf(stdout, "%s is found at %d in the pi digit!\n", pattern.Word(), result.Offset)
	return exitFound
}

// applyFlags copies every flag set on the command line over the file settings.
func applyFlags(flags *flag.FlagSet, cfg *common.Config) {
	flags.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "verbose":
			cfg.Output.Verbose = v.(bool)
		case "probe":
			cfg.Search.Probe = v.(int)
		case "max-power":
			cfg.Search.MaxPower = v.(int)
		case "limit":
			cfg.Search.Limit = v.(string)
		case "threads":
			cfg.Compute.Threads = v.(int)
		case "threshold":
			cfg.Compute.Threshold = v.(int64)
		case "fft":
			cfg.Compute.FFTThreshold = v.(int)
		case "report":
			cfg.Output.Report = v.(string)
		}
	})
}

func lastDigits(r search.Result) int {
	d := 0
	for _, a := range r.Attempts {
		d = max(d, a.Digits)
	}
	return d
}

func writeHeapProfile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}
	return f.Close()
}

func writeReport(name string, r search.Result) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	txt, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if _, err = f.Write(txt); err != nil {
		return err
	}
	return f.Close()
}
