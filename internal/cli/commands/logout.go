package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
)

// logoutCmd is the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "sign out and delete the stored session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	logoutCmd.SilenceUsage = true
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}
	if !cfg.IsConfigured() {
		ui.PrintInfo("nothing to do, project not configured")
		return nil
	}

	client, err := newSupabaseClient(cfg)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	if err := client.SignOut(context.Background()); err != nil {
		ui.PrintError("failed to sign out: %v", err)
		return fmt.Errorf("logout failed")
	}

	cfg.Email = ""
	cfg.UserID = ""
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("signed out")
	return nil
}
