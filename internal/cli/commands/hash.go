package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
)

// hashCmd generates a bcrypt hash for the server admin password
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "generate a bcrypt password hash",
	Long: `Generate a bcrypt hash for the dashboard admin password. Paste the
output into the server config under admin.password_hash.`,
	Args: cobra.NoArgs,
	RunE: runHash,
}

func init() {
	hashCmd.SilenceUsage = true
}

func runHash(cmd *cobra.Command, args []string) error {
	var password string
	prompt := &survey.Password{Message: "Password to hash:"}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.MinLength(8))); err != nil {
		return fmt.Errorf("prompt cancelled")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		ui.PrintError("failed to hash password: %v", err)
		return fmt.Errorf("hash failed")
	}

	fmt.Println(string(hash))
	return nil
}
