package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/borof-pani/app"
	"github.com/lixenwraith/borof-pani/audio"
	"github.com/lixenwraith/borof-pani/input"
	"github.com/lixenwraith/borof-pani/match"
	"github.com/lixenwraith/borof-pani/settings"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	settingsFlag  = flag.String("settings", "settings.toml", "Settings file path")
	keymapFlag    = flag.String("keymap", "", "Optional TOML file overriding key bindings")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	modeFlag      = flag.String("mode", "tag", "Body interaction: tag or bounce")
	captureFlag   = flag.String("capture", "hunter", "Who scores a capture: hunter or runner")
	wallStickFlag = flag.Bool("wallstick", true, "Let bodies cling to the world walls")
)

// matchConfig builds the match rules from the command line
func matchConfig(mode, capture string, wallStick bool) (match.Config, error) {
	cfg := match.DefaultConfig()

	m, err := match.ParseMode(mode)
	if err != nil {
		return cfg, err
	}
	c, err := match.ParseCaptureRule(capture)
	if err != nil {
		return cfg, err
	}

	cfg.Mode = m
	cfg.Capture = c
	cfg.Physics.WallStick = wallStick
	return cfg, nil
}

// loadKeys merges an optional keymap file over the default bindings
func loadKeys(path string) (*input.KeyTable, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code; deferred cleanup completes before main exits
func run() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
		app.OnCrash(func() { logFile.Close() })
	}

	cfg, err := matchConfig(*modeFlag, *captureFlag, *wallStickFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	keys, err := loadKeys(*keymapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	store := settings.NewStore(*settingsFlag)
	prefs, err := store.Load()
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: seed=%d mode=%s capture=%s wallstick=%v", seed, cfg.Mode, cfg.Capture, cfg.Physics.WallStick)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())

	// Panic Recovery: restore the terminal before printing the trace
	app.SetCrashScreen(screen)
	app.OnCrash(sound.Cleanup)
	defer func() {
		if r := recover(); r != nil {
			app.HandleCrash(r)
		}
	}()

	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}

	a := app.New(screen, app.Options{
		Match:    cfg,
		Seed:     seed,
		Keys:     keys,
		Settings: prefs,
		Store:    store,
		Speaker:  sound,
	})

	runErr := a.Run()

	sound.Cleanup()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		return 1
	}
	return 0
}
