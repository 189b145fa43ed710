package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// communitiesCmd lists and joins communities
var communitiesCmd = &cobra.Command{
	Use:   "communities",
	Short: "list communities",
	Example: `  # List all communities
  $ investictl communities

  # Join one by ID
  $ investictl communities join <community-id>`,
	Args: cobra.NoArgs,
	RunE: runCommunities,
}

// communitiesJoinCmd joins a community
var communitiesJoinCmd = &cobra.Command{
	Use:   "join <community-id>",
	Short: "join a community",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommunitiesJoin,
}

func init() {
	communitiesCmd.AddCommand(communitiesJoinCmd)
	communitiesCmd.SilenceUsage = true
	communitiesJoinCmd.SilenceUsage = true
}

func runCommunities(cmd *cobra.Command, args []string) error {
	_, client, _, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	communities, err := supabase.NewCommunityRepository(client).List(ctx)
	if err != nil {
		ui.PrintError("failed to list communities: %v", err)
		return fmt.Errorf("community list failed")
	}

	if len(communities) == 0 {
		ui.PrintInfo("no communities available yet")
		return nil
	}

	for _, community := range communities {
		ui.PrintBold("%s  (%d members)", community.Name, community.MemberCount)
		if community.Description != "" {
			fmt.Printf("  %s\n", community.Description)
		}
		fmt.Printf("  id %s\n\n", community.ID)
	}

	return nil
}

func runCommunitiesJoin(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := supabase.NewCommunityRepository(client).Join(ctx, userID, args[0]); err != nil {
		ui.PrintError("failed to join community: %v", err)
		return fmt.Errorf("join failed")
	}

	ui.PrintSuccess("joined community %s", args[0])
	return nil
}
