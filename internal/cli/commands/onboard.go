package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// Onboarding option catalogs shown in the questionnaire.
var (
	goalOptions = []string{
		"Ahorrar para el futuro",
		"Invertir mi dinero",
		"Salir de deudas",
		"Crear un negocio",
		"Libertad financiera",
	}
	interestOptions = []string{
		"Criptomonedas",
		"Acciones y ETFs",
		"Bienes raíces",
		"Startups",
		"Educación financiera",
	}
	knowledgeLevels = []string{"basico", "intermedio", "avanzado"}
)

// onboardCmd runs the profile questionnaire
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "complete the onboarding questionnaire",
	Long: `Complete your Investi profile: goals, interests and knowledge level.
Your feed and community recommendations are personalized from these answers.
Running it again overwrites the previous answers.`,
	Args: cobra.NoArgs,
	RunE: runOnboard,
}

func init() {
	onboardCmd.SilenceUsage = true
}

func runOnboard(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	answers := struct {
		Username  string
		FullName  string
		Goals     []string
		Interests []string
		Level     string
	}{}
	questions := []*survey.Question{
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Username:"},
			Validate: survey.MinLength(3),
		},
		{
			Name:     "fullname",
			Prompt:   &survey.Input{Message: "Full name:"},
			Validate: survey.Required,
		},
		{
			Name: "goals",
			Prompt: &survey.MultiSelect{
				Message: "What are your financial goals?",
				Options: goalOptions,
			},
			Validate: survey.MinItems(1),
		},
		{
			Name: "interests",
			Prompt: &survey.MultiSelect{
				Message: "What topics interest you?",
				Options: interestOptions,
			},
			Validate: survey.MinItems(1),
		},
		{
			Name: "level",
			Prompt: &survey.Select{
				Message: "How would you rate your financial knowledge?",
				Options: knowledgeLevels,
				Default: "basico",
			},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		ui.PrintError("failed to read answers: %v", err)
		return fmt.Errorf("input failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	update := &domain.ProfileUpdate{
		Username:       &answers.Username,
		FullName:       &answers.FullName,
		Goals:          answers.Goals,
		Interests:      answers.Interests,
		KnowledgeLevel: &answers.Level,
	}
	profile, err := supabase.NewProfileRepository(client).Update(ctx, userID, update)
	if err != nil {
		ui.PrintErrorBox("Onboarding Failed", err.Error())
		return fmt.Errorf("profile update failed")
	}

	name := answers.FullName
	if profile != nil && profile.FullName != "" {
		name = profile.FullName
	}
	ui.PrintSuccessBox("✓ Profile Complete", fmt.Sprintf(
		"Welcome aboard, %s!\nYour feed is now personalized to your goals.", name))

	fmt.Println()
	ui.PrintInfo("Try these next:")
	ui.PrintBold("  investictl communities  # Find communities for your interests")
	ui.PrintBold("  investictl feed         # Browse your personalized feed")

	return nil
}
