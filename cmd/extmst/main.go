// Command extmst computes an extended minimum spanning tree over a graph
// description file and prints the result report to stdout.
//
// Each edge is priced at its own weight plus the weights of both endpoint
// nodes; the tree minimizes the total of these effective costs.
//
// # Usage
//
//	extmst [--method kruskal|prim] [--root N] <input-file>
//
// The input file holds whitespace-separated integers: a "V E" header,
// V node weights in index order, then E "u v w" edge triples.
//
// # Exit codes
//
//   - 1 — unusable invocation or input: wrong argument count, unreadable
//     file, malformed header, truncated or malformed data, bad flag values.
//     A diagnostic goes to stderr.
//   - 0 — otherwise. A disconnected graph is a valid computed result,
//     reported as TOTAL_COST:-1 on stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/extmst/mst"
	"github.com/katalvlaran/extmst/mstio"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the root command. The report writer is injected so
// tests can capture stdout.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		method string
		root   int
	)

	cmd := &cobra.Command{
		Use:          "extmst <input-file>",
		Short:        "Compute an extended minimum spanning tree from a graph description file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, args[0], method, root)
		},
	}
	cmd.Flags().StringVar(&method, "method", mst.MethodKruskal, "solver method: kruskal or prim")
	cmd.Flags().IntVar(&root, "root", 0, "start vertex index for --method prim")

	return cmd
}

// run executes one batch solve: read the description, compute the tree,
// write the report.
func run(out io.Writer, path, method string, root int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	g, err := mstio.ReadGraph(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	tree, total, err := mst.Compute(g, mst.WithMethod(method), mst.WithRoot(root))
	switch {
	case err == nil:
		return mstio.WriteResult(out, tree, total)
	case errors.Is(err, mst.ErrDisconnected):
		// A computed outcome, not a process error: report -1, exit 0.
		return mstio.WriteFailure(out)
	case errors.Is(err, mst.ErrUnknownMethod), errors.Is(err, mst.ErrRootOutOfRange):
		// Flag misuse is an invocation error.
		return err
	default:
		// Internal failure: same report sentinel as disconnection at this
		// boundary, but logged with the distinct cause.
		slog.Error("solver failed", "input", path, "error", err)

		return mstio.WriteFailure(out)
	}
}
