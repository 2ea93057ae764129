package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent power plan changes",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	var reply struct {
		Changes []struct {
			Plan      string    `json:"plan"`
			Name      string    `json:"name"`
			Source    string    `json:"source"`
			ChangedAt time.Time `json:"changed_at"`
		} `json:"changes"`
	}
	if err := c.get(fmt.Sprintf("/api/history?limit=%d", historyLimit), &reply); err != nil {
		return err
	}

	if len(reply.Changes) == 0 {
		fmt.Println("No plan changes recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPLAN\tSOURCE")
	for _, ch := range reply.Changes {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			ch.ChangedAt.Local().Format("2006-01-02 15:04:05"),
			planLabel(ch.Name, ch.Plan),
			ch.Source,
		)
	}
	return w.Flush()
}
