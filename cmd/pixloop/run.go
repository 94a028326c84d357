package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pixloop/internal/app"
	"pixloop/internal/config"
	"pixloop/internal/storage"
	"pixloop/pkg/engine"
	"pixloop/pkg/platform/desktop"
	"pixloop/pkg/platform/terminal"
	"pixloop/pkg/replay"
)

var (
	flagBackend string
	flagRecord  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the sketch pad",
	Long: `Open the sketch pad.

Controls:
  Left mouse       - Paint
  Right mouse      - Erase
  1-9              - Pick palette color
  Arrows / Space   - Move the keyboard cursor / paint at it
  - / =            - Shrink / grow the brush
  C                - Clear
  Ctrl+Z / Ctrl+Y  - Undo / redo
  Ctrl+C / Ctrl+V  - Copy brush color / paste a hex color
  Ctrl+Shift+C     - Copy the canvas as an image
  F12              - Save a screenshot
  Esc              - Quit

Examples:
  pixloop run
  pixloop run --backend terminal
  pixloop run --record session.pxl`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagBackend, "backend", "", "Backend: desktop or terminal (default from config)")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to this file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagRecord != "" {
		cfg.Record.Path = flagRecord
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg)

	palette, err := cfg.Colors()
	if err != nil {
		return err
	}

	backend, err := newBackend(&cfg, logger)
	if err != nil {
		return err
	}

	var rec *replay.Recorder
	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Record.Path != "" {
		rec = replay.NewRecorder(backend)
		backend = rec
		opts = append(opts, engine.WithClock(rec))
	}

	e, err := engine.New(cfg.Engine(), backend, opts...)
	if err != nil {
		return err
	}

	started := time.Now()
	runErr := e.Start(app.New(palette))

	if rec != nil {
		saveOpts := replay.SaveOptions{Compression: cfg.Record.Compress}
		if err := replay.SaveWithOptions(cfg.Record.Path, rec.Recording(), saveOpts); err != nil {
			logger.Error("recording not saved", "path", cfg.Record.Path, "err", err)
		} else {
			logger.Info("recording saved", "path", cfg.Record.Path, "frames", len(rec.Recording().Frames))
		}
	}

	saveSession(cfg, logger, storage.Session{
		Backend:   cfg.Backend,
		Title:     cfg.Window.Title,
		Frames:    e.Stats().Frames,
		Duration:  time.Since(started),
		AvgFPS:    e.Stats().FPS(),
		Exit:      e.ExitReason().String(),
		Recording: cfg.Record.Path,
		CreatedAt: started,
	})
	return runErr
}

func newBackend(cfg *config.Config, logger *log.Logger) (engine.Backend, error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return nil, errors.New("terminal backend needs stdout to be a terminal")
		}
		if cols, rows, err := term.GetSize(fd); err == nil {
			w, h := cfg.Window.Width*cfg.Window.ScaleX, (cfg.Window.Height*cfg.Window.ScaleY+1)/2
			if cols < w || rows < h {
				// One cell per pixel column, two pixel rows per cell.
				logger.Info("terminal smaller than scaled surface, using scale 1",
					"cols", cols, "rows", rows, "need_cols", w, "need_rows", h)
				cfg.Window.ScaleX, cfg.Window.ScaleY = 1, 1
			}
		}
		return terminal.New(), nil
	case config.BackendDesktop:
		return desktop.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// saveSession stores the run in the history database. Failures are logged
// and never fail the command.
func saveSession(cfg config.Config, logger *log.Logger, sess storage.Session) {
	if cfg.Storage.Path == "" {
		return
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("session history unavailable", "err", err)
		return
	}
	defer store.Close()
	if _, err := store.SaveSession(sess); err != nil {
		logger.Warn("session not recorded", "err", err)
	}
}
