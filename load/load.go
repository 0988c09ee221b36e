// Package load reads documents from files or standard input.
package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/signadot/transcheck/format"
	"github.com/signadot/transcheck/ir"
)

// Stdin is the path naming standard input.
const Stdin = "-"

var ErrStdinTwice = errors.New("standard input named more than once")

// Document reads and parses the document at path, or in from when path
// is Stdin. The format is f when given, otherwise inferred from the
// path suffix.
func Document(path string, in io.Reader, f *format.Format) (*ir.Node, error) {
	var r io.Reader
	if path != Stdin {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	} else {
		r = in
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	fmat := format.FromPath(path)
	if f != nil {
		fmat = *f
	}
	y, err := ir.Parse(d, fmat)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return y, nil
}

// Pair loads the documents at a and b concurrently. At most one of them
// may be Stdin.
func Pair(ctx context.Context, in io.Reader, a, b string, f *format.Format) (*ir.Node, *ir.Node, error) {
	if a == Stdin && b == Stdin {
		return nil, nil, ErrStdinTwice
	}
	var x, y *ir.Node
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range []struct {
		path string
		dst  **ir.Node
	}{{a, &x}, {b, &y}} {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := Document(job.path, in, f)
			if err != nil {
				return err
			}
			*job.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
