package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
)

var loginEmail string

// loginCmd is the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "sign in to Investi",
	Long: `Sign in to Investi and save the session locally.

On first run the command prompts for the project URL and public API key
and stores them in ~/.investi/config.json. The session tokens are stored
separately in ~/.investi/credentials.json and used automatically by all
subsequent commands.`,
	Example: `  # Sign in (prompts for email and password)
  $ investictl login

  # Sign in with a known email
  $ investictl login -e ana@example.com`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email to sign in with")
	loginCmd.SilenceUsage = true
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	if !cfg.IsConfigured() {
		if err := promptProjectSettings(cfg); err != nil {
			return err
		}
	}

	// 1. Prompt for email if not provided
	if loginEmail == "" {
		prompt := &survey.Input{
			Message: "Email:",
		}
		if err := survey.AskOne(prompt, &loginEmail, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read email: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	// 2. Prompt for password (hidden input)
	var password string
	prompt := &survey.Password{
		Message: "Password:",
	}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read password: %v", err)
		return fmt.Errorf("input failed")
	}

	// 3. Create backend client
	client, err := newSupabaseClient(cfg)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Signing in to %s...", cfg.AuthURL)

	// 4. Exchange credentials; tokens are persisted by the client
	session, err := client.SignIn(ctx, loginEmail, password)
	if err != nil {
		ui.PrintErrorBox("Login Failed", err.Error())
		return fmt.Errorf("authentication failed")
	}

	// 5. Remember who is signed in
	cfg.Email = session.User.Email
	cfg.UserID = session.User.ID
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	configPath, _ := config.GetConfigPath()
	successContent := fmt.Sprintf(`Email:          %s
User ID:        %s
Config saved:   %s`,
		session.User.Email,
		session.User.ID,
		configPath,
	)
	ui.PrintSuccessBox("✓ Login Successful", successContent)

	fmt.Println()
	ui.PrintInfo("You can now use the following commands:")
	ui.PrintBold("  investictl onboard      # Complete your profile")
	ui.PrintBold("  investictl feed         # Browse your feed")
	ui.PrintBold("  investictl chat         # Talk to Irï")

	return nil
}

// promptProjectSettings asks for the project endpoints on first run
func promptProjectSettings(cfg *config.Config) error {
	var projectURL string
	if err := survey.AskOne(&survey.Input{
		Message: "Project URL (https://your-project.supabase.co):",
	}, &projectURL, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read project URL: %v", err)
		return fmt.Errorf("input failed")
	}

	var anonKey string
	if err := survey.AskOne(&survey.Input{
		Message: "Public API key:",
	}, &anonKey, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read API key: %v", err)
		return fmt.Errorf("input failed")
	}

	base := strings.TrimRight(projectURL, "/")
	cfg.RestURL = base + "/rest/v1"
	cfg.AuthURL = base + "/auth/v1"
	cfg.StorageURL = base + "/storage/v1"
	cfg.AnonKey = anonKey

	return cfg.Save()
}
