package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	afkCmd.AddCommand(afkStatusCmd)
	afkCmd.AddCommand(afkTimeoutCmd)
	afkCmd.AddCommand(afkTargetCmd)
	afkCmd.AddCommand(afkOffCmd)
	rootCmd.AddCommand(afkCmd)
}

var afkCmd = &cobra.Command{
	Use:   "afk",
	Short: "Configure the away-from-keyboard plan switch",
}

var afkStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the AFK configuration and current state",
	RunE:  runAfkStatus,
}

var afkTimeoutCmd = &cobra.Command{
	Use:   "timeout MINUTES",
	Short: "Set the idle timeout in minutes (0 disables)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAfkTimeout,
}

var afkTargetCmd = &cobra.Command{
	Use:   "target PLAN",
	Short: "Set the away plan by name or id",
	Args:  cobra.ExactArgs(1),
	RunE:  runAfkTarget,
}

var afkOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the AFK switch, restoring the prior plan if needed",
	RunE:  runAfkOff,
}

func runAfkStatus(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	var reply afkReply
	if err := c.get("/api/afk", &reply); err != nil {
		return err
	}
	printAfk(c, reply)
	return nil
}

func runAfkTimeout(cmd *cobra.Command, args []string) error {
	minutes, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid minutes %q", args[0])
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	body := map[string]uint64{"timeout_minutes": minutes}
	if err := c.put("/api/afk", body, nil); err != nil {
		return err
	}

	if minutes == 0 {
		fmt.Println("AFK switch disabled.")
	} else {
		fmt.Printf("AFK timeout set to %d min.\n", minutes)
	}
	return nil
}

func runAfkTarget(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	plan, err := c.resolvePlan(args[0])
	if err != nil {
		return err
	}
	body := map[string]string{"target_plan": plan.ID}
	if err := c.put("/api/afk", body, nil); err != nil {
		return err
	}

	fmt.Printf("AFK target set to %s.\n", plan.Name)
	return nil
}

func runAfkOff(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.post("/api/afk/disable", nil); err != nil {
		return err
	}
	fmt.Println("AFK switch disabled.")
	return nil
}

// printAfk renders the shared config+state block used by both
// `status` and `afk status`.
func printAfk(c *client, reply afkReply) {
	if reply.Config.TimeoutMinutes == 0 {
		fmt.Println("AFK switch:   off")
	} else {
		fmt.Printf("AFK switch:   after %d min idle\n", reply.Config.TimeoutMinutes)
	}

	target := reply.Config.TargetPlan
	if target == "" || target == zeroUUID {
		fmt.Println("AFK target:   (none)")
	} else if plan, err := c.resolvePlan(target); err == nil {
		fmt.Printf("AFK target:   %s\n", plan.Name)
	} else {
		fmt.Printf("AFK target:   %s\n", target)
	}

	if reply.State.Phase == "forced" {
		fmt.Println("AFK state:    forced (away plan active)")
	} else {
		fmt.Printf("AFK state:    %s\n", reply.State.Phase)
	}
}

const zeroUUID = "00000000-0000-0000-0000-000000000000"
