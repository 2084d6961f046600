// Command fandial-demo runs the fan dial in an interactive window.
// Clicking or tapping the disc cycles the speed off → low → medium →
// high → off. Colors, labels, and the initial speed come from an
// optional YAML/JSON config file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/satindergrewal/fandial"
)

// Game drives the dial from ebiten's event loop: Layout reports
// bounds, Update dispatches pointer activations, Draw renders through
// the surface adapter.
type Game struct {
	dial   *fandial.Dial
	logger *slog.Logger

	width, height int
	touchIDs      []ebiten.TouchID
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.dispatch(float64(x), float64(y))
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.dispatch(float64(x), float64(y))
	}
	return nil
}

// dispatch forwards a recognized press to the dial when it lands on
// the disc.
func (g *Game) dispatch(x, y float64) {
	if !g.dial.Contains(x, y) {
		return
	}
	g.dial.Activate(false)
	g.logger.Info("speed changed",
		"speed", g.dial.Speed().String(),
		"description", g.dial.Description(),
		"action", g.dial.Accessibility().ActionLabel)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.dial.Render(&ebitenSurface{dst: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.dial.Resize(float64(outsideWidth), float64(outsideHeight))
		g.logger.Debug("resized", "width", outsideWidth, "height", outsideHeight, "radius", g.dial.Radius())
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to YAML or JSON config file")
	logLevel := flag.String("log-level", "", "log level: error, warn, info or debug (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	dialCfg, err := cfg.DialConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	dial := fandial.New(dialCfg)
	dial.OnRepaint(func() {
		logger.Debug("repaint requested", "speed", dial.Speed().String())
	})

	initial, err := fandial.ParseSpeed(cfg.InitialSpeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: initial_speed: %v\n", err)
		os.Exit(1)
	}
	for dial.Speed() != initial {
		dial.Activate(false)
	}

	logger.Info("starting",
		"title", cfg.Window.Title,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"speed", dial.Speed().String())

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{dial: dial, logger: logger}); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

// setupLogger builds a text slog logger at the requested level.
func setupLogger(level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "error":
		slogLevel = slog.LevelError
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "info":
		slogLevel = slog.LevelInfo
	case "debug":
		slogLevel = slog.LevelDebug
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be error, warn, info, or debug)", level)
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), nil
}
