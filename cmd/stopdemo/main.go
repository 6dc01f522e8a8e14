// Command stopdemo replays a scripted gradient editing session.
//
// It loads a palette, editor options and a list of actions from a session
// file, runs them through the editor, prints the final canonical palette as
// JSON and writes a preview swatch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/stopedit"
	"github.com/gogpu/stopedit/internal/config"
)

func main() {
	var (
		session = flag.String("config", "", "session file (JSON, YAML or TOML)")
		output  = flag.String("output", "", "swatch output file (overrides config)")
	)
	flag.Parse()

	if err := run(*session, *output); err != nil {
		fmt.Fprintln(os.Stderr, "stopdemo:", err)
		os.Exit(1)
	}
}

func run(session, output string) error {
	cfg, err := config.Load(session)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	stopedit.SetLogger(logger)

	initial := stopedit.AssignIDs(cfg.InitialPalette())

	last := stopedit.Canonicalize(initial)
	sink := func(p []stopedit.CanonicalStop) {
		last = p
		logger.Info("palette changed", "stops", len(p))
	}

	store, err := stopedit.NewStore(initial, sink, cfg.Options()...)
	if err != nil {
		return err
	}

	if err := replay(store, cfg.Actions, logger); err != nil {
		return err
	}

	out, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	g, err := stopedit.NewGradient(last)
	if err != nil {
		return err
	}
	fmt.Println(g.CSS(cfg.Angle))

	return writeSwatch(cfg.Output, g, int(store.Width()), int(store.PaletteHeight()))
}

func writeSwatch(path string, g *stopedit.Gradient, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, g.Swatch(w, h)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
