package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// whoamiCmd shows the signed-in profile
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "show the signed-in profile",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	whoamiCmd.SilenceUsage = true
}

func runWhoami(cmd *cobra.Command, args []string) error {
	cfg, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	profile, err := supabase.NewProfileRepository(client).GetByID(ctx, userID)
	if err != nil {
		ui.PrintError("failed to fetch profile: %v", err)
		return fmt.Errorf("profile fetch failed")
	}

	if profile == nil {
		// signed in but the profile row does not exist yet
		ui.PrintBold("User ID:  %s", userID)
		ui.PrintBold("Email:    %s", cfg.Email)
		fmt.Println()
		ui.PrintInfo("No profile yet. Run 'investictl onboard' to create one.")
		return nil
	}

	ui.PrintBold("User ID:   %s", profile.ID)
	ui.PrintBold("Email:     %s", profile.Email)
	if profile.Username != "" {
		ui.PrintBold("Username:  %s", profile.Username)
	}
	if profile.FullName != "" {
		ui.PrintBold("Name:      %s", profile.FullName)
	}
	if len(profile.Goals) > 0 {
		ui.PrintBold("Goals:     %s", strings.Join(profile.Goals, ", "))
	}
	if len(profile.Interests) > 0 {
		ui.PrintBold("Interests: %s", strings.Join(profile.Interests, ", "))
	}
	if profile.KnowledgeLevel != "" {
		ui.PrintBold("Level:     %s", profile.KnowledgeLevel)
	}

	if !profile.Onboarded() {
		fmt.Println()
		ui.PrintInfo("Profile incomplete. Run 'investictl onboard' to finish it.")
	}

	return nil
}
