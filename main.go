package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/renderer/tui"
	"minesweeper/pkg/game/state"
)

func initLogging(cfg config.Config) (io.Closer, error) {
	if cfg.Log.File == "" {
		return nil, logging.Configure(cfg.Log.Level, os.Stderr)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	if err := logging.Configure(cfg.Log.Level, f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func main() {
	cfg, err := config.FromArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := initLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	gotext.Configure(cfg.LocalesDir, cfg.Locale, "default")

	renderer.SetRenderer(tui.New())
	renderer.Init()

	s := gameplay.BuildSession(cfg)
	for !s.Quit {
		mainLoop(s)
	}

	renderer.ShowMessage(gotext.Get("GOODBYE"))
}

func mainLoop(s *state.Session) {
	renderer.Clear()
	renderer.RenderFrame(s)

	intent, err := input.Stdin().ReadIntent()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logging.Log.WithError(err).Error("reading input")
		}
		// end of input quits
		intent = input.Intent{Action: input.ActionQuit}
		renderer.ShowMessage("")
	}

	gameplay.ProcessIntent(s, intent)
}
