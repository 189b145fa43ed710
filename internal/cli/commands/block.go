package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// blockCmd blocks another user
var blockCmd = &cobra.Command{
	Use:   "block <user-id>",
	Short: "block a user",
	Long: `Block a user. Their posts and comments disappear from your feed.
Blocking the same user again has no effect.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlock,
}

func init() {
	blockCmd.SilenceUsage = true
}

func runBlock(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	if args[0] == userID {
		ui.PrintError("you cannot block yourself")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := supabase.NewModerationRepository(client).BlockUser(ctx, userID, args[0]); err != nil {
		ui.PrintError("failed to block user: %v", err)
		return fmt.Errorf("block failed")
	}

	ui.PrintSuccess("user %s blocked", args[0])
	return nil
}
