package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
)

// signupCmd is the signup command
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "create a new Investi account",
	Long: `Create a new Investi account.

Registration does not sign you in: run 'investictl login' afterwards to
establish a session.`,
	Args: cobra.NoArgs,
	RunE: runSignup,
}

func init() {
	signupCmd.SilenceUsage = true
}

func runSignup(cmd *cobra.Command, args []string) error {
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

	answers := struct {
		Email    string
		Password string
		Confirm  string
	}{}
	questions := []*survey.Question{
		{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email:"},
			Validate: survey.Required,
		},
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password (min 6 characters):"},
			Validate: survey.MinLength(6),
		},
		{
			Name:     "confirm",
			Prompt:   &survey.Password{Message: "Confirm password:"},
			Validate: survey.Required,
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		ui.PrintError("failed to read input: %v", err)
		return fmt.Errorf("input failed")
	}
	if answers.Password != answers.Confirm {
		ui.PrintError("passwords do not match")
		return fmt.Errorf("input failed")
	}

	client, err := newSupabaseClient(cfg)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	session, err := client.SignUp(ctx, answers.Email, answers.Password)
	if err != nil {
		ui.PrintErrorBox("Signup Failed", err.Error())
		return fmt.Errorf("registration failed")
	}

	ui.PrintSuccessBox("✓ Account Created", fmt.Sprintf(`Email:    %s
User ID:  %s`,
		answers.Email,
		session.User.ID,
	))

	fmt.Println()
	ui.PrintInfo("Run 'investictl login' to sign in.")

	return nil
}
