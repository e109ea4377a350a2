package statistics

import (
	"bufio"
	"fmt"
	"io"
)

// ReportHeader is the first line of a statistics report
const ReportHeader = "Number of players, Shortest game, Longest game, Average game"

// WriteReport writes the header followed by one row per player count
func WriteReport(w io.Writer, rows []GameStats) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, ReportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(bw, "%d, %d, %d, %.2f\n", row.Players, row.Shortest, row.Longest, row.Average); err != nil {
			return err
		}
	}
	return bw.Flush()
}
