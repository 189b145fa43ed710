package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	servercfg "github.com/pubnicaragua/investi-documentacion2/internal/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "investictl",
	Short:   "Investi terminal client",
	Version: version,
	Long: `A command-line client for the Investi financial-education platform.
Sign in, complete onboarding, browse your feed and communities, publish
posts and talk to Irï without leaving the terminal.`,
	Example: `  # Sign in (prompts for the project settings on first run)
  $ investictl login

  # Complete the onboarding questionnaire
  $ investictl onboard

  # Browse your personalized feed
  $ investictl feed

  # Talk to Irï
  $ investictl chat`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(communitiesCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(hashCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("investictl version %s\n", version)
}

// quietLogger keeps infrastructure logging out of the terminal UI
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSupabaseClient builds the backend client over the on-disk token store
func newSupabaseClient(cfg *config.Config) (*supabase.Client, error) {
	credPath, err := supabase.DefaultCredentialsPath()
	if err != nil {
		return nil, err
	}

	return supabase.NewClient(servercfg.SupabaseConfig{
		RestURL:    cfg.RestURL,
		AuthURL:    cfg.AuthURL,
		StorageURL: cfg.StorageURL,
		AnonKey:    cfg.AnonKey,
	}, supabase.NewFileStore(credPath), quietLogger())
}

// requireSession loads the CLI config and returns a client plus the
// signed-in user ID, failing with a hint when either is missing.
func requireSession() (*config.Config, *supabase.Client, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.IsConfigured() {
		ui.PrintError("project not configured")
		fmt.Println("\nRun 'investictl login' to configure and sign in.")
		return nil, nil, "", fmt.Errorf("configuration required")
	}

	client, err := newSupabaseClient(cfg)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to create client: %w", err)
	}

	userID := client.CurrentUserID()
	if userID == "" {
		ui.PrintError("not authenticated, please login first")
		fmt.Println("\nRun 'investictl login' to authenticate.")
		return nil, nil, "", fmt.Errorf("authentication required")
	}

	return cfg, client, userID, nil
}
