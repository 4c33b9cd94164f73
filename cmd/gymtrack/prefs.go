// ABOUTME: CLI commands for display preferences and Drive background images.
// ABOUTME: Preferences live in the KV store; images come from configured Drive folders.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/spf13/cobra"
)

var (
	prefAnime     string
	prefWallpaper string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change display preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		printPrefs(prefsStore().Get(cmd.Context()))
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change display preferences",
	Long: `Change the selected anime and wallpaper backgrounds.
Only the flags given are changed; an empty value clears the selection.

EXAMPLES:

  gymtrack prefs set --anime "One Punch Man"
  gymtrack prefs set --wallpaper ""`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch prefs.Patch
		if cmd.Flags().Changed("anime") {
			patch.SelectedAnime = &prefAnime
		}
		if cmd.Flags().Changed("wallpaper") {
			patch.SelectedWallpaper = &prefWallpaper
		}
		if patch.SelectedAnime == nil && patch.SelectedWallpaper == nil {
			return fmt.Errorf("nothing to change, use --anime or --wallpaper")
		}

		p, err := prefsStore().Update(cmd.Context(), patch)
		if err != nil {
			return err
		}
		color.Green("✓ Preferences updated")
		printPrefs(p)
		return nil
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images [folder-url...]",
	Short: "List background images from Google Drive folders",
	Long: `List thumbnail URLs for the images in Google Drive folders.

Without arguments the folders from drive.folders in the config are used.
Results are cached in the local KV store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := imagesClient(cmd.Context())
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("images need drive.api_key in the config or GYMTRACK_GOOGLE_DRIVE_API_KEY")
		}

		folders := args
		if len(folders) == 0 {
			folders = cfg.Drive.Folders
		}
		if len(folders) == 0 {
			return fmt.Errorf("no folders given and drive.folders is empty")
		}

		urls, err := client.FolderImages(cmd.Context(), folders)
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			fmt.Println("No images found.")
			return nil
		}
		for _, u := range urls {
			fmt.Println(u)
		}
		return nil
	},
}

func printPrefs(p prefs.Preferences) {
	none := color.New(color.Faint).Sprint("(none)")
	anime, wallpaper := none, none
	if p.SelectedAnime != nil {
		anime = *p.SelectedAnime
	}
	if p.SelectedWallpaper != nil {
		wallpaper = *p.SelectedWallpaper
	}
	fmt.Printf("Anime: %s\n", anime)
	fmt.Printf("Wallpaper: %s\n", wallpaper)
}

func init() {
	prefsSetCmd.Flags().StringVar(&prefAnime, "anime", "", "selected anime background")
	prefsSetCmd.Flags().StringVar(&prefWallpaper, "wallpaper", "", "selected wallpaper")

	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(imagesCmd)
}
