package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/expected/internal/logging"
	"github.com/Philanthropists/expected/internal/memo"
	"github.com/Philanthropists/expected/pkg/expected"
	"github.com/Philanthropists/expected/pkg/pipe"
)

var GitCommit string

type Options struct {
	File       string
	Goroutines uint
	Timeout    uint
	Debug      bool
}

func getOptions() Options {
	defer flag.Parse()

	var options Options

	flag.StringVar(&options.File, "file", "", "file with one number per line, stdin if empty")
	flag.UintVar(&options.Goroutines, "goroutines", 0, "parallel evaluations, number of CPUs if 0")
	flag.UintVar(&options.Timeout, "timeout", 0, "seconds before evaluation is cancelled")
	flag.BoolVar(&options.Debug, "debug", false, "output debug logs")

	return options
}

type Summary struct {
	Backing  string   `json:"backing"`
	Parsed   int      `json:"parsed"`
	Failed   int      `json:"failed"`
	Sum      int64    `json:"sum"`
	Failures []string `json:"failures,omitempty"`
}

func parseNumber(_ context.Context, line string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, errs.New("invalid number %q: %w", line, err)
	}
	return n, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(err)
	}

	return lines, nil
}

// evaluate parses every line of r concurrently. Repeated lines are served
// from cache, failures included.
func evaluate(ctx context.Context, r io.Reader, goroutines int, cache *memo.Client[int64]) (Summary, error) {
	log := logging.FromContext(ctx)

	lines, err := readLines(r)
	if err != nil {
		return Summary{}, err
	}

	in := make(chan string)
	go func() {
		defer close(in)
		for _, l := range lines {
			select {
			case <-ctx.Done():
				return
			case in <- l:
			}
		}
	}()

	out := pipe.ConcurrentMap(ctx.Done(), goroutines, in, func(line string) pipe.Result[int64] {
		res := cache.Get(ctx, line)
		log.Debug("evaluated line", logging.String("line", line), logging.Outcome("outcome", res))
		return res
	})

	values, failures := pipe.Partition(ctx.Done(), out)
	if ctx.Err() != nil {
		return Summary{}, errs.Wrap(ctx.Err())
	}

	s := Summary{
		Backing: expected.BackingName,
		Parsed:  len(values),
		Failed:  len(failures),
	}
	for _, v := range values {
		s.Sum += v
	}
	for _, f := range failures {
		s.Failures = append(s.Failures, f.Error())
	}

	return s, nil
}

func openInput(file string) (io.ReadCloser, error) {
	if file == "" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return f, nil
}

func main() {
	options := getOptions()

	log := logging.NewWithDebug(options.Debug)
	defer func() { _ = log.Sync() }()

	version := "dev"
	if len(GitCommit) >= 3 {
		version = GitCommit[:3]
	}
	log = log.With(logging.String("version", version), logging.String("backing", expected.BackingName))

	ctx := log.GetContext(context.Background())
	if options.Timeout != 0 {
		t := time.Duration(options.Timeout) * time.Second
		nctx, cancel := context.WithTimeout(ctx, t)
		ctx = nctx
		defer cancel()
	}

	goroutines := int(options.Goroutines)
	if goroutines == 0 {
		goroutines = runtime.NumCPU()
	}

	input, err := openInput(options.File)
	if err != nil {
		log.Fatal("could not open input", logging.Error(err))
	}
	defer input.Close()

	cache := &memo.Client[int64]{Load: parseNumber}

	start := time.Now()
	summary, err := evaluate(ctx, input, goroutines, cache)
	if err != nil {
		log.Fatal("failed to evaluate input", logging.Error(err))
	}

	log.Info("evaluation finished",
		logging.Int("parsed", summary.Parsed),
		logging.Int("failed", summary.Failed),
		logging.Int("cached", cache.Len()),
		logging.Duration("elapsed", time.Since(start)),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatal("could not write summary", logging.Error(err))
	}
}
