package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixloop/internal/app"
	"pixloop/pkg/pixel"
	"pixloop/pkg/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording headlessly and verify every frame",
	Long: `Feed a recorded session back through the sketch pad without a window,
using the recorded frame times, and compare each presented frame with the
recorded digest. The palette comes from the current configuration and must
match the one used while recording.

Examples:
  pixloop replay session.pxl`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// replayApp builds the sketch pad with every host side effect disabled.
func replayApp(palette []pixel.Color) *app.App {
	a := app.New(palette)
	a.Clipboard = app.NoClipboard{}
	a.Images = nil
	a.SavePath = nil
	return a
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	rec, err := replay.Load(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	palette, err := cfg.Colors()
	if err != nil {
		return err
	}

	sketch := replayApp(palette)
	h := rec.Header
	logger.Info("replaying", "title", h.Title, "size", fmt.Sprintf("%dx%d", h.Width, h.Height),
		"frames", len(rec.Frames), "duration", rec.Duration())

	stats, err := replay.Verify(rec, sketch, logger)
	if err != nil {
		return fmt.Errorf("replay diverged: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d frames verified (%.1f fps recorded)\n", stats.Frames, stats.FPS())
	return nil
}
