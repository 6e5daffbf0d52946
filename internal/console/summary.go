// internal/console/summary.go

package console

import (
	"fmt"
	"io"

	"grievance/internal/complaint"
)

// WriteSummary 輸出各狀態筆數與總數。
func WriteSummary(w io.Writer, t complaint.Tally) {
	fmt.Fprintln(w, "\nStatus-wise Complaint Count:")
	fmt.Fprintf(w, "  %-13s %d\n", "Open:", t[complaint.StatusOpen])
	fmt.Fprintf(w, "  %-13s %d\n", "In Progress:", t[complaint.StatusInProgress])
	fmt.Fprintf(w, "  %-13s %d\n", "Closed:", t[complaint.StatusClosed])
	fmt.Fprintf(w, "\n  %-13s %d\n", "Total:", t.Total())
}
