package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available power plans",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	var listing struct {
		Plans []planInfo `json:"plans"`
	}
	if err := c.get("/api/plans", &listing); err != nil {
		return err
	}
	var active planInfo
	if err := c.get("/api/plans/active", &active); err != nil {
		return err
	}

	if len(listing.Plans) == 0 {
		fmt.Println("No power plans available.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tNAME\tID")
	for _, p := range listing.Plans {
		marker := " "
		if p.ID == active.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", marker, p.Name, p.ID)
	}
	return w.Flush()
}
