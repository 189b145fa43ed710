package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/chatbot"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/tui"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
)

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "chat with Irï, the scripted assistant",
	Long: `Start an interactive chat session with Irï. Replies come from a fixed
script, so no account or network connection is needed.`,
	Example: `  # Start interactive chat
  $ investictl chat

  # Keyboard controls:
  • Type a message and press Enter to send
  • Esc to quit`,
	RunE: runChat,
}

func init() {
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'investictl chat' to start an interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	ui.PrintChatWelcomeBanner()
	fmt.Println(dimHint())

	session := chatbot.NewSession(chatbot.NewMatcher())
	program := tui.NewChatProgram(session)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}

	return nil
}

// dimHint lists the quick prompts shown before the TUI takes over the screen
func dimHint() string {
	out := "Puedes preguntar, por ejemplo:\n"
	for _, p := range chatbot.QuickPrompts {
		out += "  • " + p + "\n"
	}
	return out
}
