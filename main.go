package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ProPhuMy/Desktop-cat/config"
	"github.com/ProPhuMy/Desktop-cat/internal/anim"
	"github.com/ProPhuMy/Desktop-cat/internal/chat"
	"github.com/ProPhuMy/Desktop-cat/internal/game"
	"github.com/ProPhuMy/Desktop-cat/internal/monitor"
	"github.com/ProPhuMy/Desktop-cat/internal/screen"
	"github.com/ProPhuMy/Desktop-cat/internal/sprite"
)

var (
	cfgPath  string
	assetDir string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "desktop-cat",
	Short: "Neko, an animated desktop companion",
	Long: `Neko is a sprite pet that idles, sleeps and walks across your screen.
Drag it around, right-click it for a menu, and chat with it through Gemini
(set GEMINI_API_KEY or GOOGLE_API_KEY). Chat sessions are logged to CSV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.json", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&assetDir, "assets", "", "override the animation asset directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run() error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if assetDir != "" {
		cfg.AssetDir = assetDir
	}
	if envCfg.Model != "" {
		cfg.Model = envCfg.Model
	}

	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowTitle("Neko")

	sprites, err := sprite.Load(cfg.AssetDir)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}

	mon := monitor.New(cfg.StressThreshold, logger)
	mon.Start()
	defer mon.Stop()

	cycler := anim.New(sprites.Counts(), anim.WithStress(mon.Stressed))

	var recorder chat.Recorder
	if log, err := chat.OpenLog(cfg.LogDir, time.Now(), logger); err != nil {
		logger.Warn("session log unavailable", zap.Error(err))
	} else {
		recorder = log
		defer log.Close()
	}

	session := chat.NewSession(buildSender(cfg, envCfg), recorder, logger)

	mgr := game.New(sprites, cycler, screen.Desktop(), mon, session, cfg.ShowStats, logger)
	mgr.Init()

	if err := ebiten.RunGameWithOptions(mgr, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// buildSender wires the Gemini client. A missing key or failed handshake
// disables chat rather than killing the pet; the popup explains itself.
func buildSender(cfg *config.Config, envCfg config.Env) chat.Sender {
	key := envCfg.APIKey()
	if key == "" {
		logger.Warn("no GEMINI_API_KEY or GOOGLE_API_KEY set, chat disabled")
		return nil
	}
	client, err := chat.NewClient(context.Background(), key, cfg.Model, logger)
	if err != nil {
		logger.Warn("gemini unavailable, chat disabled", zap.Error(err))
		return nil
	}
	return client
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
