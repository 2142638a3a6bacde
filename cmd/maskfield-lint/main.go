package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-maskfield/pkg/schema"
)

const (
	exitClean      = 0
	exitViolations = 1
	exitUsage      = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run lints every path or URL in args, writing findings to stderr. It
// returns exitViolations on findings or read errors.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [paths or URLs...]\n", flags.Name())
		fmt.Fprintf(stderr, "\nLint OpenAPI documents for invalid x-mask and x-mask-field extensions.\n")
		flags.PrintDefaults()
	}
	timeout := flags.Duration("timeout", 10*time.Second, "timeout for remote documents")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	paths := flags.Args()
	if len(paths) == 0 {
		flags.Usage()
		return exitUsage
	}

	reader := schema.NewReader(schema.WithHTTPFallback(*timeout))

	code := exitClean
	for _, path := range paths {
		violations, err := lintPath(ctx, reader, path)
		if err != nil {
			fmt.Fprintf(stderr, "lint %s: %v\n", path, err)
			return exitViolations
		}
		for _, v := range violations {
			code = exitViolations
			fmt.Fprintf(stderr, "%s: %s\n", path, v)
		}
	}
	return code
}

func lintPath(ctx context.Context, reader *schema.Reader, path string) ([]schema.Violation, error) {
	src, err := schema.ParseSource(path)
	if err != nil {
		return nil, err
	}
	raw, err := reader.Read(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return schema.Lint(ctx, raw)
}
