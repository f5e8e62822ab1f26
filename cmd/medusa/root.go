package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/medusa"
)

var (
	configPath string
	assetDir   string
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:          "medusa",
	Short:        "Medusa live wallpaper",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON tuning file")
	rootCmd.PersistentFlags().StringVarP(&assetDir, "assets", "a", "", "directory with dark, light, slider, eyes, eyes_mask and overlay images")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "log per-frame timings to stderr")
}

// loadScene reads the configuration and the six wallpaper images. Without
// an asset directory a placeholder scene of w×h is generated and the eyes
// anchor is moved onto its eyes.
func loadScene(dir, cfgPath string, w, h int) (*medusa.Assets, medusa.Config, error) {
	cfg := medusa.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = medusa.LoadConfig(cfgPath); err != nil {
			return nil, cfg, err
		}
	}

	if dir == "" {
		p := medusa.NewPlaceholder(w, h)
		cfg.EyesAnchorX, cfg.EyesAnchorY = p.EyesAnchor.X, p.EyesAnchor.Y
		assets, err := medusa.LoadAssets(p.Source)
		return assets, cfg, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, cfg, err
	}
	if !info.IsDir() {
		return nil, cfg, fmt.Errorf("%s is not a directory", dir)
	}
	assets, err := medusa.LoadAssets(medusa.NewDirSource(os.DirFS(dir)))
	if err != nil {
		return nil, cfg, err
	}
	if debugMode {
		log.Printf("[medusa] assets from %s, dark %v", dir, assets.Dark.Bounds().Size())
	}
	return assets, cfg, nil
}
