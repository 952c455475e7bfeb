package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/younsl/cloudctl/pkg/openstack"
)

// PrintTimings prints how long each API call of the command took
func PrintTimings(w io.Writer, timings []openstack.Timing) {
	if len(timings) == 0 {
		return
	}

	fmt.Fprintln(w, "\n## API Call Timings")

	// Set up tabwriter with kubectl style spacing
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tURL\tSECONDS")

	var total time.Duration
	for _, t := range timings {
		total += t.Duration
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Method, t.URL, seconds(t.Duration))
	}

	fmt.Fprintf(tw, "Total:\t%s calls\t%s\n", humanize.Comma(int64(len(timings))), seconds(total))
	tw.Flush()
}

func seconds(d time.Duration) string {
	return humanize.FtoaWithDigits(d.Seconds(), 3)
}
