package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-arena/audio"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/game"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/network"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/render/renderer"
	"github.com/lixenwraith/vi-arena/vmath"
)

var (
	configPath   = flag.String("config", "", "Path to a TOML config file (defaults when empty)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/vi-arena.log")
	muteFlag     = flag.Bool("mute", false, "Start with sound effects muted")
	spectateAddr = flag.String("spectate", "", "Serve the websocket spectator feed on this address, e.g. :8090")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	matchID := uuid.New()
	if logFile := setupLogging(*debugFlag, matchID.String()); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *spectateAddr != "" {
		cfg.Spectator.Address = *spectateAddr
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(visual.StyleBackground)

	deps := game.Deps{MatchID: matchID}

	// Audio is optional; the game runs silent when the device cannot be opened
	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "err", err)
		}
		sound.SetMuted(*muteFlag)
		defer sound.Close()
		deps.Audio = sound
	}

	var hub *network.Hub
	if cfg.Spectator.Address != "" {
		hub = network.NewHub(cfg.NetworkConfig(), matchID.String())
		deps.Publisher = hub
	}

	g := game.New(cfg, deps)
	slog.Info("vi-arena started",
		"audio", sound != nil && sound.Available(),
		"spectate", cfg.Spectator.Address,
	)

	// Render pipeline
	width, height := screen.Size()
	half := visual.ArenaViewScale * cfg.Arena.Diameter
	orchestrator := render.NewRenderOrchestrator(screen,
		render.NewViewport(width, height-visual.HUDRows, vmath.V2(half, half)))

	rendererList := []struct {
		r        render.SystemRenderer
		priority render.RenderPriority
	}{
		{renderer.NewGeometryRenderer(g.World, g.Space), render.PriorityGeometry},
		{renderer.NewEntityRenderer(g.World, g.Space), render.PriorityEntities},
		{renderer.NewCrosshairRenderer(g.World), render.PriorityCrosshair},
		{renderer.NewHUDRenderer(g.World), render.PriorityUI},
		{renderer.NewOverlayRenderer(), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.r, def.priority)
	}

	inputHandler := input.NewHandler(orchestrator.Viewport())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Input polling uses a raw goroutine; PollEvent returns nil once the screen is finalized
	events := make(chan tcell.Event, parameter.InputEventBuffer)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	// Simulation
	eg.Go(core.Guard(func() error {
		return g.Run(ctx, nil)
	}))

	// Input and presentation
	eg.Go(core.Guard(func() error {
		defer cancel()
		frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
		defer frameTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev := <-events:
				intent := inputHandler.Handle(g.World, ev)
				switch intent.Type {
				case input.IntentQuit:
					slog.Info("quit requested")
					return nil
				case input.IntentPause:
					paused := g.TogglePause()
					slog.Info("pause toggled", "paused", paused)
				case input.IntentRestart:
					inputHandler.Reset()
					g.Restart()
				case input.IntentToggleMute:
					if sound != nil {
						slog.Info("mute toggled", "muted", sound.ToggleMute())
					}
				case input.IntentResize:
					orchestrator.Resize(intent.Width, intent.Height)
					inputHandler.SetViewport(orchestrator.Viewport())
					screen.Sync()
				}

			case <-frameTicker.C:
				orchestrator.RenderFrame(g.World)
			}
		}
	}))

	if hub != nil {
		eg.Go(core.Guard(func() error {
			// Spectating is optional; a failed listener leaves the game running
			if err := hub.Run(ctx); err != nil {
				slog.Error("spectator server failed", "err", err)
			}
			return nil
		}))
	}

	err = eg.Wait()
	slog.Info("vi-arena stopped", "frames", g.World.FrameNumber())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
