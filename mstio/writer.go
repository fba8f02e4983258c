// Package mstio implements the result-report writer.
package mstio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/extmst/mst"
)

// WriteResult writes the success report for a computed tree:
// the total line, then one comma-separated line per accepted edge
// (u,v,w,w_u,w_v,effective_cost) between the START/END markers.
//
// The trivial |V| ≤ 1 result is a success with an empty edge block.
func WriteResult(w io.Writer, edges []mst.TreeEdge, total int64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "TOTAL_COST:%d\n", total)
	fmt.Fprintln(bw, "MST_EDGES_START")
	for _, e := range edges {
		fmt.Fprintf(bw, "%d,%d,%d,%d,%d,%d\n",
			e.U, e.V, e.Weight, e.UWeight, e.VWeight, e.EffectiveCost)
	}
	fmt.Fprintln(bw, "MST_EDGES_END")

	return bw.Flush()
}

// WriteFailure writes the failure report: the -1 sentinel with no edge
// block. Callers use it for disconnection and internal failures alike; the
// distinction lives in the solver's error values, not in this report.
func WriteFailure(w io.Writer) error {
	_, err := fmt.Fprintln(w, "TOTAL_COST:-1")

	return err
}
