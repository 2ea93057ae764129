package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status: active plan, idle time, AFK state",
	RunE:  runStatus,
}

type statusReply struct {
	Version     string   `json:"version"`
	ActivePlan  planInfo `json:"active_plan"`
	IdleSeconds uint64   `json:"idle_seconds"`
	Afk         afkReply `json:"afk"`
}

type afkReply struct {
	Config struct {
		TimeoutMinutes uint   `json:"timeout_minutes"`
		TargetPlan     string `json:"target_plan"`
	} `json:"config"`
	State struct {
		Phase        string `json:"phase"`
		PreviousPlan string `json:"previous_plan"`
	} `json:"state"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	var st statusReply
	if err := c.get("/api/status", &st); err != nil {
		return err
	}

	fmt.Printf("planshift %s\n", st.Version)
	fmt.Printf("Active plan:  %s\n", planLabel(st.ActivePlan.Name, st.ActivePlan.ID))
	fmt.Printf("Idle:         %ds\n", st.IdleSeconds)
	printAfk(c, st.Afk)
	return nil
}

// planLabel prefers the display name and falls back to the raw id.
func planLabel(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
