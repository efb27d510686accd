package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/simon-says/audio"
	"github.com/lixenwraith/simon-says/config"
	"github.com/lixenwraith/simon-says/constants"
	"github.com/lixenwraith/simon-says/engine"
	"github.com/lixenwraith/simon-says/game"
	"github.com/lixenwraith/simon-says/input"
	"github.com/lixenwraith/simon-says/logging"
	"github.com/lixenwraith/simon-says/metrics"
	"github.com/lixenwraith/simon-says/render"
	"github.com/lixenwraith/simon-says/server"
	"github.com/lixenwraith/simon-says/store"
)

const loopQueueSize = 256

func main() {
	cfg, err := config.Load(os.Args[1:], ".env")
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	// A missing backend is not fatal, the game runs without persistence
	var st store.Store
	st, err = store.Open(cfg)
	if err != nil {
		log.Warn("high score store unavailable, using memory", zap.String("backend", cfg.Backend), zap.Error(err))
		st = store.NewMemory()
	}
	defer st.Close()

	sound := audio.NewSoundManager(audio.LoadAudioConfig(), log)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio initialization failed, continuing without audio", zap.Error(err))
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	screen.SetStyle(render.StyleOutside)
	// Normal exit terminal cleanup
	defer screen.Fini()

	crash := func(r any) {
		// Restore terminal before printing so the trace is readable
		screen.Fini()
		log.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
		_ = log.Sync()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mSIMON SAYS CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	loop := engine.NewLoop(loopQueueSize)
	loop.SetCrashHandler(crash)
	loop.Start()
	defer loop.Stop()

	var rng game.RandomSource
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	presenter := render.NewTerminalPresenter(screen)
	recorder := metrics.NewRecorder()
	eng := game.NewEngine(game.Deps{
		Presenter: presenter,
		Audio:     sound,
		Storage:   st,
		Scheduler: loop,
		Observer:  recorder,
		Logger:    log,
		Rand:      rng,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop.Do(func() {
		eng.Init(ctx)
		presenter.SetHighScore(eng.HighScore())
		recorder.SetHighScore(eng.HighScore())
	})

	// Every input source funnels into the loop
	sink := func(a game.Action) {
		loop.Post(func() { eng.HandleInput(a) })
	}

	if cfg.BridgeAddr != "" {
		bridge := input.NewBridge(sink, input.NewShakeDetector(), log)
		srv := server.New(cfg.BridgeAddr, server.NewRouter(bridge, recorder.Handler()), log)
		if _, err := srv.Start(); err != nil {
			log.Error("bridge disabled", zap.String("addr", cfg.BridgeAddr), zap.Error(err))
		} else {
			defer func() {
				bridge.Close()
				sctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(sctx); err != nil {
					log.Warn("http shutdown", zap.Error(err))
				}
			}()
		}
	}

	keyboard := input.NewKeyboard(screen, input.DefaultKeyMap(), sink, presenter.Redraw, log)
	keyboard.Run(ctx)

	loop.Do(eng.Close)
	log.Info("exiting", zap.Int("high_score", eng.HighScore()))
}
