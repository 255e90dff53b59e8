package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/highscore"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	difficultyFlag = flag.String("difficulty", game.Medium.String(), "Starting difficulty: easy, medium, hard")
	scoresFlag     = flag.String("scores", constants.DefaultHighScoreFile, "High score file")
	soundsFlag     = flag.String("sounds", "", "Directory with eat.wav, game_over.wav, move.wav, snake_bgm_soft.wav (default: ./"+constants.DefaultSoundDir+" if present, else synthesized)")
	muteFlag       = flag.Bool("mute", false, "Start muted")
	debugFlag      = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag       = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	keymapFlag     = flag.String("keymap", "", "TOML file overriding key bindings")
)

func main() {
	// Panic Recovery: restores the terminal once it is registered
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	difficulty, err := game.ParseDifficulty(*difficultyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		override, err := input.LoadKeyConfigFile(*keymapFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	sessionID := uuid.New()
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	setLogSession(sessionID)

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	// Initialize audio, game continues silently on failure
	audioCfg := audio.LoadAudioConfig()
	audioCfg.SoundDir = audio.ResolveSoundDir(*soundsFlag)
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	var rng *rand.Rand
	if *seedFlag != 0 {
		rng = rand.New(rand.NewSource(*seedFlag))
	}

	store := highscore.NewFileStore(*scoresFlag)
	log.Printf("High scores: %s, sounds: %q", store.Path(), audioCfg.SoundDir)

	ctx := engine.NewGameContext(engine.Config{
		Difficulty: difficulty,
		Muted:      *muteFlag,
		SessionID:  sessionID,
		RNG:        rng,
		Store:      store,
		Sounds:     sounds,
	})

	renderer := render.NewTerminalRenderer(screen, ctx.Width, ctx.Height)
	handler := input.NewHandler(ctx, keys)

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	// Input polling goroutine, the only goroutine besides main touching the screen
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(ctx)

	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				log.Printf("Quit requested: score=%d phase=%s", ctx.Snake.Score, ctx.State.Phase())
				sounds.FadeOut(constants.QuitFadeDuration)
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				renderer.Resize()
			}

		case <-frameTicker.C:
			ctx.Update()
			renderer.RenderFrame(ctx)
		}
	}
}
