package root

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/syre-ai/neural-foundry/internal/config"
	"github.com/syre-ai/neural-foundry/internal/engine"
	"github.com/syre-ai/neural-foundry/internal/journal"
	"github.com/syre-ai/neural-foundry/internal/logging"
	"github.com/syre-ai/neural-foundry/internal/track/art"
	"github.com/syre-ai/neural-foundry/internal/ui"
)

// App holds everything a command needs for one invocation: config, loaded
// state, the mission registry and the runner wired over them.
type App struct {
	Cfg     *config.Config
	BaseDir string
	State   *engine.GameState
	Runner  *engine.Runner
	Journal *journal.Journal
	Log     *zap.Logger
}

// openApp loads config and state, builds the registry and opens the
// journal. The journal and debug log are best-effort: failures there warn
// and continue, they never block a command.
func openApp(ctx context.Context) (*App, func(), error) {
	defaultDir, err := engine.DefaultBaseDir()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(config.Path(defaultDir))
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" "+err.Error()+"; using defaults"))
	}
	baseDir := defaultDir
	if cfg.BaseDir != "" {
		baseDir = cfg.BaseDir
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create base dir: %w", err)
	}

	log, err := logging.New(cfg.Debug, baseDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" debug log unavailable: "+err.Error()))
		log = zap.NewNop()
	}

	state := engine.LoadState(engine.SavePath(baseDir))
	if cfg.PlayerName != "" {
		state.PlayerName = cfg.PlayerName
	}

	reg := engine.NewRegistry()
	art.RegisterAll(reg)

	runner := engine.NewRunner(reg, state, engine.SavePath(baseDir), filepath.Join(baseDir, "workspace"))
	runner.Log = log

	jnl, err := journal.Open(ctx, journal.DefaultPath(baseDir))
	if err != nil {
		log.Warn("journal unavailable", zap.Error(err))
	} else {
		runner.Journal = jnl
	}

	app := &App{
		Cfg:     cfg,
		BaseDir: baseDir,
		State:   state,
		Runner:  runner,
		Journal: jnl,
		Log:     log,
	}
	cleanup := func() {
		if jnl != nil {
			_ = jnl.Close()
		}
		_ = log.Sync()
	}
	return app, cleanup, nil
}
