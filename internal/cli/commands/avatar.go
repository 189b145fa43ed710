package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// avatar uploads are capped client side, matching the app
const maxAvatarSize = 5 << 20

// avatarCmd uploads a profile picture
var avatarCmd = &cobra.Command{
	Use:   "avatar <image-file>",
	Short: "upload a profile picture",
	Long: `Upload a profile picture. The image is stored at a fixed per-user path
so re-uploading replaces the previous one, and the profile photo URL is
updated to match.`,
	Example: `  $ investictl avatar ./me.jpg`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAvatar,
}

func init() {
	avatarCmd.SilenceUsage = true
}

func runAvatar(cmd *cobra.Command, args []string) error {
	cfg, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		ui.PrintError("cannot read file: %v", err)
		return fmt.Errorf("invalid file")
	}
	if info.Size() > maxAvatarSize {
		ui.PrintError("image is larger than 5 MB")
		return fmt.Errorf("invalid file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		ui.PrintError("cannot read file: %v", err)
		return fmt.Errorf("invalid file")
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "image/jpeg"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	ref, err := supabase.NewObjectStore(client).UploadAvatar(ctx, userID, contentType, data)
	if err != nil {
		ui.PrintErrorBox("Upload Failed", err.Error())
		return fmt.Errorf("upload failed")
	}

	// point the profile at the uploaded object
	photoURL := cfg.StorageURL + "/object/public/" + ref.Key
	_, err = supabase.NewProfileRepository(client).Update(ctx, userID, &domain.ProfileUpdate{
		PhotoURL: &photoURL,
	})
	if err != nil {
		ui.PrintWarning("avatar uploaded but profile update failed: %v", err)
	}

	ui.PrintSuccess("avatar uploaded (%s)", ref.Key)
	return nil
}
