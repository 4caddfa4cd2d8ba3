package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snake-classic/driver"
	"snake-classic/game"
	"snake-classic/sound"
	"snake-classic/terminal"
	"snake-classic/ui"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels (raylib frontend)")
	flag.IntVar(&cfg.InitialLength, "length", cfg.InitialLength, "Tail segments at the start of a round")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between two snake moves")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = random)")
	frontend := flag.String("frontend", "raylib", "Frontend to run: raylib or terminal")
	withSound := flag.Bool("sound", false, "Play sound cues")
	showFPS := flag.Bool("fps", false, "Show the frame rate (raylib frontend)")
	logFile := flag.String("log", "", "Log file (terminal frontend logs nowhere by default)")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := run(cfg, *frontend, *withSound, *showFPS, *logFile); err != nil {
		log.Fatalf("snake: %v", err)
	}
}

func run(cfg game.Config, frontend string, withSound, showFPS bool, logFile string) error {
	logger := log.Default()
	if frontend == "terminal" {
		out, closeLog, err := terminalLogOutput(logFile)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = log.New(out, "", log.Ltime|log.Lshortfile)
	}

	var player sound.Player = sound.Nop{}
	if withSound {
		speaker, err := sound.NewSpeaker()
		if err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			player = speaker
			defer speaker.Close()
		}
	}

	d, err := driver.New(cfg, driver.WithLogger(logger), driver.WithSound(player))
	if err != nil {
		return err
	}

	switch frontend {
	case "raylib":
		return ui.Run(d, ui.Options{ShowFPS: showFPS, TargetFPS: 60})
	case "terminal":
		return runTerminal(d, cfg)
	default:
		return errors.Errorf("unknown frontend %q", frontend)
	}
}

func runTerminal(d *driver.Driver, cfg game.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()

	if err := terminal.CheckSize(screen, cfg.Grid()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.Run(ctx, d, screen)
}

// terminalLogOutput keeps log lines off the game screen.
func terminalLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return f, func() { f.Close() }, nil
}
