package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// learnCmd browses the course catalog
var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "browse the course catalog",
	Example: `  # List courses with their modules and lessons
  $ investictl learn

  # Mark a lesson as completed
  $ investictl learn complete <lesson-id>`,
	Args: cobra.NoArgs,
	RunE: runLearn,
}

var learnCompleteCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runLearnComplete,
}

func init() {
	learnCmd.AddCommand(learnCompleteCmd)
	learnCmd.SilenceUsage = true
	learnCompleteCmd.SilenceUsage = true
}

func runLearn(cmd *cobra.Command, args []string) error {
	_, client, _, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	courses, err := supabase.NewLearningRepository(client).CoursesWithLessons(ctx)
	if err != nil {
		ui.PrintError("failed to list courses: %v", err)
		return fmt.Errorf("course list failed")
	}

	if len(courses) == 0 {
		ui.PrintInfo("no courses available yet")
		return nil
	}

	for _, course := range courses {
		ui.PrintBold("%s", course.Title)
		if course.Description != "" {
			fmt.Printf("  %s\n", course.Description)
		}
		for _, module := range course.Modules {
			fmt.Printf("  %d. %s\n", module.Order, module.Title)
			for _, lesson := range module.Lessons {
				fmt.Printf("     - %s  (id %s)\n", lesson.Title, lesson.ID)
			}
		}
		fmt.Println()
	}

	return nil
}

func runLearnComplete(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := supabase.NewLearningRepository(client).CompleteLesson(ctx, userID, args[0]); err != nil {
		ui.PrintError("failed to record progress: %v", err)
		return fmt.Errorf("progress update failed")
	}

	ui.PrintSuccess("lesson %s completed", args[0])
	return nil
}
