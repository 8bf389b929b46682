package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/webrunner/assets"
	"github.com/automoto/webrunner/assets/sound"
	"github.com/automoto/webrunner/components"
	"github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/scenes"
	"github.com/automoto/webrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Level  string `help:"Level to play, relative to the asset directory." default:"levels/level1.tmx"`
	Assets string `help:"Directory holding images, audio and levels." default:"assets" type:"existingdir"`
	Config string `help:"YAML file overriding the built-in tuning." type:"existingfile"`
	Debug  bool   `help:"Enable debug logging and draw collision boxes."`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// keyboardIntent maps the arrow keys and space onto player intent.
func keyboardIntent() components.IntentData {
	return components.IntentData{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("webrunner"),
		kong.Description("a side-scrolling platformer"),
		kong.UsageOnError(),
	)

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Config != "" {
		if err := config.Load(CLI.Config); err != nil {
			log.Fatal().Err(err).Msg("could not load configuration")
		}
	}
	config.C.Debug = CLI.Debug

	fsys := os.DirFS(CLI.Assets)
	level, err := assets.NewLevelLoader(fsys).Load(CLI.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load level")
	}

	sounds := sound.NewLoader(fsys, systems.AudioContext())
	var paths []string
	for _, p := range config.Sound.SFXPaths {
		paths = append(paths, p)
	}
	sounds.Preload(paths...)

	g := &Game{}
	g.scene = scenes.NewPlatformerScene(g, scenes.Options{
		Level:   level,
		Sprites: assets.NewSpriteLoader(fsys, config.Assets.SpriteTimeout),
		Sounds:  sounds,
		Intent:  scenes.IntentFunc(keyboardIntent),
	})

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("webrunner")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
