package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/medusa"
	"github.com/phanxgames/medusa/host"
)

var previewOpts struct {
	width, height int
	hud           bool
	linear        bool
	ignoreFocus   bool
	script        string
	exit          bool
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play the wallpaper in a resizable window",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	f := previewCmd.Flags()
	f.IntVar(&previewOpts.width, "width", 540, "window width")
	f.IntVar(&previewOpts.height, "height", 960, "window height")
	f.BoolVar(&previewOpts.hud, "hud", false, "show frame rate and cursor overlay")
	f.BoolVar(&previewOpts.linear, "linear", false, "bilinear filtering when scaling to the window")
	f.BoolVar(&previewOpts.ignoreFocus, "ignore-focus", false, "keep animating while the window is unfocused")
	f.StringVar(&previewOpts.script, "script", "", "JSON test script to play")
	f.BoolVar(&previewOpts.exit, "exit", false, "close the window when the script is done")
}

func runPreview(cmd *cobra.Command, args []string) error {
	assets, cfg, err := loadScene(assetDir, configPath, 1080, 1920)
	if err != nil {
		return err
	}

	opts := host.Options{
		Width:            previewOpts.width,
		Height:           previewOpts.height,
		HUD:              previewOpts.hud,
		Linear:           previewOpts.linear,
		IgnoreFocus:      previewOpts.ignoreFocus,
		ExitOnScriptDone: previewOpts.exit,
		Debug:            debugMode,
	}
	if previewOpts.script != "" {
		data, err := os.ReadFile(previewOpts.script)
		if err != nil {
			return err
		}
		if opts.Script, err = medusa.LoadTestScript(data); err != nil {
			return err
		}
	}
	return host.Run(assets, cfg, opts)
}
