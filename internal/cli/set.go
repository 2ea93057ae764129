package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set PLAN",
	Short: "Activate a power plan by name or id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	plan, err := c.resolvePlan(args[0])
	if err != nil {
		return err
	}

	var result planInfo
	if err := c.put("/api/plans/active", map[string]string{"id": plan.ID}, &result); err != nil {
		return err
	}

	fmt.Printf("Active plan: %s\n", result.Name)
	return nil
}
