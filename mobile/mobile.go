//go:build mobile

// Package mobile is the ebitenmobile binding of the wallpaper.
//
// Build an Android archive with:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg net.emirac.medusa -o build/medusa.aar ./mobile
//
// The host application may call SetAssetDir and SetConfigJSON before the
// view is first drawn. Without an asset directory the generated placeholder
// scene is shown.
package mobile

import (
	"encoding/json"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/phanxgames/medusa"
	"github.com/phanxgames/medusa/host"
)

var (
	mu       sync.Mutex
	assetDir string
	config   = medusa.DefaultConfig()
)

// SetAssetDir points the wallpaper at a directory holding dark, light,
// slider, eyes, eyes_mask and overlay images.
func SetAssetDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	assetDir = dir
}

// SetConfigJSON overlays a JSON tuning document onto the defaults.
func SetConfigJSON(data string) error {
	cfg := medusa.DefaultConfig()
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	config = cfg
	return nil
}

// lazyGame builds the engine on the first Update or Draw, once the
// platform has had a chance to configure the package.
type lazyGame struct {
	once    sync.Once
	game    *host.Game
	initErr error
}

func (g *lazyGame) initialize() {
	g.once.Do(func() {
		log.Println("[mobile] starting lazy initialization")
		mu.Lock()
		dir, cfg := assetDir, config
		mu.Unlock()

		assets, err := loadAssets(dir, &cfg)
		if err != nil {
			log.Printf("[mobile] load assets: %v", err)
			g.initErr = err
			return
		}
		g.game, err = host.NewGame(assets, cfg, host.Options{})
		if err != nil {
			log.Printf("[mobile] engine: %v", err)
			g.initErr = err
			return
		}
		log.Println("[mobile] engine ready")
	})
}

func loadAssets(dir string, cfg *medusa.Config) (*medusa.Assets, error) {
	if dir == "" {
		p := medusa.NewPlaceholder(1080, 1920)
		cfg.EyesAnchorX, cfg.EyesAnchorY = p.EyesAnchor.X, p.EyesAnchor.Y
		return medusa.LoadAssets(p.Source)
	}
	return medusa.LoadAssets(medusa.NewDirSource(os.DirFS(dir)))
}

func (g *lazyGame) Update() error {
	g.initialize()
	if g.game == nil {
		return nil
	}
	return g.game.Update()
}

func (g *lazyGame) Draw(screen *ebiten.Image) {
	g.initialize()
	if g.initErr != nil {
		screen.Fill(color.RGBA{255, 0, 0, 255})
		return
	}
	if g.game != nil {
		g.game.Draw(screen)
	}
}

func (g *lazyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.game != nil {
		return g.game.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func init() {
	log.Println("[mobile] registering lazy game")
	mobile.SetGame(&lazyGame{})
}

// Dummy is an exported no-op so that ebitenmobile binds the package.
func Dummy() {}
