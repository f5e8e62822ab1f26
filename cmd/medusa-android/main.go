//go:build android

// Command medusa-android is the native Android build of the wallpaper.
package main

import "github.com/phanxgames/medusa/xmobile"

func main() {
	xmobile.Main(xmobile.Options{})
}
