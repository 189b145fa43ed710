package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

var postCommunityID string

// postCmd groups post operations
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "publish and interact with posts",
	Example: `  # Publish a post
  $ investictl post create "Mi primera inversión 🎉"

  # Publish into a community
  $ investictl post create -c <community-id> "Pregunta sobre ETFs"

  # Show a post with its comments
  $ investictl post show <post-id>

  # Like and comment
  $ investictl post like <post-id>
  $ investictl post comment <post-id> "Muy buen punto"`,
}

var postCreateCmd = &cobra.Command{
	Use:   "create <content>",
	Short: "publish a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostCreate,
}

var postShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "show a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostShow,
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostLike,
}

var postCommentCmd = &cobra.Command{
	Use:   "comment <post-id> <content>",
	Short: "comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE:  runPostComment,
}

func init() {
	postCreateCmd.Flags().StringVarP(&postCommunityID, "community", "c", "", "Community to publish into")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postCommentCmd)

	for _, cmd := range []*cobra.Command{postCmd, postCreateCmd, postShowCmd, postLikeCmd, postCommentCmd} {
		cmd.SilenceUsage = true
	}
}

func runPostCreate(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	content := strings.TrimSpace(args[0])
	if content == "" {
		ui.PrintError("post content is empty")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	post, err := supabase.NewPostRepository(client).Create(ctx, &domain.NewPost{
		UserID:      userID,
		CommunityID: postCommunityID,
		Content:     content,
	})
	if err != nil {
		ui.PrintErrorBox("Post Failed", err.Error())
		return fmt.Errorf("post creation failed")
	}

	ui.PrintSuccess("published post %s", post.ID)
	return nil
}

func runPostShow(cmd *cobra.Command, args []string) error {
	_, client, _, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	post, err := supabase.NewPostRepository(client).GetDetail(ctx, args[0])
	if err != nil {
		ui.PrintError("failed to fetch post: %v", err)
		return fmt.Errorf("post fetch failed")
	}

	author := post.AuthorName
	if author == "" {
		author = "someone"
	}
	ui.PrintBold("%s · %s", author, formatAge(post.CreatedAt))
	fmt.Println(post.Content)
	fmt.Printf("  ♥ %d   💬 %d\n", post.LikesCount, post.CommentCount)

	if len(post.Comments) > 0 {
		fmt.Println()
		ui.PrintBold("Comments")
		for _, comment := range post.Comments {
			fmt.Printf("  • %s  (%s)\n", comment.Content, formatAge(comment.CreatedAt))
		}
	}

	return nil
}

func runPostLike(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := supabase.NewPostRepository(client).Like(ctx, args[0], userID, true); err != nil {
		ui.PrintError("failed to like post: %v", err)
		return fmt.Errorf("like failed")
	}

	ui.PrintSuccess("liked post %s", args[0])
	return nil
}

func runPostComment(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	content := strings.TrimSpace(args[1])
	if content == "" {
		ui.PrintError("comment content is empty")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	comment, err := supabase.NewPostRepository(client).Comment(ctx, args[0], userID, content, "")
	if err != nil {
		ui.PrintError("failed to comment: %v", err)
		return fmt.Errorf("comment failed")
	}

	ui.PrintSuccess("comment %s added", comment.ID)
	return nil
}
