// Command medusa previews and renders the Medusa wallpaper on the desktop.
//
//	medusa preview --assets ./res --hud
//	medusa render --width 1080 --height 1920 --frames 40 --out frame.png
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
