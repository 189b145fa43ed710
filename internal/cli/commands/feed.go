package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

var feedLimit int

// feedCmd shows the personalized feed
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "browse your personalized feed",
	Example: `  # Show the latest posts
  $ investictl feed

  # Show more posts
  $ investictl feed -n 50`,
	Args: cobra.NoArgs,
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 20, "Maximum number of posts")
	feedCmd.SilenceUsage = true
}

func runFeed(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// same guard the app applies before showing the home feed
	profile, err := supabase.NewProfileRepository(client).GetByID(ctx, userID)
	if err == nil && needsOnboarding(profile) {
		ui.PrintInfo("Profile incomplete. Run 'investictl onboard' to personalize your feed.")
		fmt.Println()
	}

	posts, err := supabase.NewFeedRepository(client).UserFeed(ctx, userID, feedLimit)
	if err != nil {
		ui.PrintError("failed to fetch feed: %v", err)
		return fmt.Errorf("feed fetch failed")
	}

	if len(posts) == 0 {
		ui.PrintInfo("your feed is empty, join a community to see posts")
		return nil
	}

	for _, post := range posts {
		author := post.AuthorName
		if author == "" {
			author = "someone"
		}
		ui.PrintBold("%s · %s", author, formatAge(post.CreatedAt))
		fmt.Println(post.Content)
		fmt.Printf("  ♥ %d   💬 %d   id %s\n\n", post.LikesCount, post.CommentCount, post.ID)
	}

	return nil
}

// needsOnboarding reports whether the questionnaire nudge should show.
// A missing profile row counts as not onboarded.
func needsOnboarding(profile *entity.Profile) bool {
	return profile == nil || !profile.Onboarded()
}

// formatAge renders a post timestamp as a relative age
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	age := time.Since(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
