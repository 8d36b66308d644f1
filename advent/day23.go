package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cespare/amphipod/burrow"
	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("23a", "least energy to organize the amphipods", day23a)
	register("23b", "same, after unfolding the diagram", day23b)
	register("23moves", "list the first moves from a burrow", day23moves)
}

func day23a(name string, args []string) { solveDay23(name, args, false) }
func day23b(name string, args []string) { solveDay23(name, args, true) }

type result struct {
	cost    int
	stats   burrow.Stats
	elapsed time.Duration
}

func solveDay23(name string, args []string, unfold bool) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var (
		configPath = fs.String("config", defaultConfigPath(), "INI config `file`")
		maxDepth   = fs.Int("maxdepth", 0, "give up after following this many moves (0 for the default)")
		stats      = fs.Bool("stats", false, "print search statistics to stderr")
		human      = fs.Bool("humanize", false, "print energies with digit separators")
		profile    = fs.String("fgprof", "", "write a wall-clock profile of the search to `file`")
		verbose    = fs.Bool("v", false, "dump the burrow when it cannot be solved")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s %s [flags] [input...]\n", os.Args[0], name)
		fmt.Fprintln(fs.Output(), "Each input is a puzzle file, or - for stdin (the default).")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	configSet := false
	fs.Visit(func(f *flag.Flag) { configSet = configSet || f.Name == "config" })
	cfg, err := loadConfig(*configPath, configSet)
	if err != nil {
		log.Fatal(err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maxdepth":
			cfg.maxDepth = *maxDepth
		case "stats":
			cfg.stats = *stats
		case "humanize":
			cfg.humanize = *human
		}
	})

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if err := runDay23(paths, unfold, cfg, *profile); err != nil {
		var uerr *burrow.UnsolvableError
		if *verbose && errors.As(err, &uerr) {
			pretty.Println(uerr.State)
		}
		log.Fatal(err)
	}
}

func runDay23(paths []string, unfold bool, cfg config, profile string) (err error) {
	if profile != "" {
		stop, perr := startProfile(profile)
		if perr != nil {
			return perr
		}
		defer func() {
			if stopErr := stop(); stopErr != nil && err == nil {
				err = fmt.Errorf("error writing profile: %s", stopErr)
			}
		}()
	}

	// Each input gets its own Solver; nothing is shared between them.
	results := make([]result, len(paths))
	var wg wait.Group
	for i, path := range paths {
		wg.Go(func(_ <-chan struct{}) error {
			r, err := solvePath(path, unfold, cfg)
			if err != nil {
				return &inputError{path: path, err: err}
			}
			results[i] = r
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		if len(paths) > 1 {
			fmt.Printf("%s: ", paths[i])
		}
		fmt.Println(formatEnergy(r.cost, cfg.humanize))
		if cfg.stats {
			logStats(paths[i], r)
		}
	}
	if cfg.stats {
		if rss, ok := maxRSS(); ok {
			log.Printf("max RSS: %s", humanize.Bytes(rss))
		}
	}
	return nil
}

type inputError struct {
	path string
	err  error
}

func (e *inputError) Error() string { return fmt.Sprintf("%s: %s", e.path, e.err) }
func (e *inputError) Unwrap() error { return e.err }

func solvePath(path string, unfold bool, cfg config) (result, error) {
	if path == "-" {
		return solveInput(os.Stdin, unfold, cfg)
	}
	f, err := os.Open(path)
	if err != nil {
		return result{}, err
	}
	defer f.Close()
	return solveInput(f, unfold, cfg)
}

func solveInput(r io.Reader, unfold bool, cfg config) (result, error) {
	s, err := burrow.Parse(r)
	if err != nil {
		return result{}, err
	}
	if unfold {
		if s, err = s.Unfold(); err != nil {
			return result{}, err
		}
	}
	start := time.Now()
	sv := burrow.NewSolver(burrow.Options{MaxDepth: cfg.maxDepth})
	cost, err := sv.MinimumCost(s)
	if err != nil {
		return result{}, err
	}
	return result{cost: cost, stats: sv.Stats(), elapsed: time.Since(start)}, nil
}

func formatEnergy(n int, human bool) string {
	if human {
		return humanize.Comma(int64(n))
	}
	return strconv.Itoa(n)
}

func logStats(path string, r result) {
	log.Printf(
		"%s: expanded %s states (%s cached, %s cache hits, %s dead ends) in %s",
		path,
		humanize.Comma(int64(r.stats.Expanded)),
		humanize.Comma(int64(r.stats.CacheSize)),
		humanize.Comma(int64(r.stats.CacheHits)),
		humanize.Comma(int64(r.stats.DeadEnds)),
		r.elapsed.Round(time.Millisecond),
	)
}

func day23moves(name string, args []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	unfold := fs.Bool("unfold", false, "unfold the diagram first")
	depth := fs.Int("depth", 1, "list moves this many levels deep")
	raw := fs.Bool("raw", false, "dump moves as Go values")
	fs.Parse(args)

	var in io.Reader = os.Stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	s, err := burrow.Parse(in)
	if err != nil {
		log.Fatal(err)
	}
	if *unfold {
		if s, err = s.Unfold(); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Print(s)
	printMoves(s, 0, 1, *depth, *raw)
}

func printMoves(s burrow.State, spent, level, depth int, raw bool) {
	for _, m := range s.MoveList() {
		if raw {
			pretty.Println(m)
		} else {
			fmt.Printf("\nlevel %d: energy %d (total %d)\n%s", level, m.Energy, spent+m.Energy, m.Next)
		}
		if level < depth {
			printMoves(m.Next, spent+m.Energy, level+1, depth, raw)
		}
	}
}
