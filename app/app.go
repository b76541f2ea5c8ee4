// Package app wires input, simulation, rendering, audio and settings into the screen loop
package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/borof-pani/event"
	"github.com/lixenwraith/borof-pani/input"
	"github.com/lixenwraith/borof-pani/level"
	"github.com/lixenwraith/borof-pani/match"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/render"
	"github.com/lixenwraith/borof-pani/settings"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Speaker receives game events for audio cues and follows the settings volume
type Speaker interface {
	event.Sink
	SetVolume(v float64)
}

// Options configures an App
type Options struct {
	// Match holds the base rules, Map is taken from settings at match start
	Match match.Config
	Seed  uint64

	Keys     *input.KeyTable
	Settings settings.Settings
	Store    *settings.Store
	Speaker  Speaker
}

// App owns the screen state machine and every collaborator
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	tracker  *input.Tracker
	speaker  Speaker
	store    *settings.Store

	settings settings.Settings
	cfg      match.Config
	seed     uint64

	state       Screen
	menuSel     MenuItem
	settingsSel render.SettingsRow

	match    *match.Match
	snap     match.Snapshot
	preview  *level.Level
	rng      *vmath.FastRand
	lastTick time.Time
	quit     bool
}

// New creates an app drawing to screen; a nil screen is allowed for headless use
func New(screen tcell.Screen, opts Options) *App {
	a := &App{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		tracker:  input.NewTracker(opts.Keys, parameter.KeyHoldWindow, parameter.KeyRepeatGap),
		speaker:  opts.Speaker,
		store:    opts.Store,
		settings: opts.Settings,
		cfg:      opts.Match,
		seed:     opts.Seed,
		rng:      vmath.NewFastRand(opts.Seed),
	}
	a.settings.Clamp()
	a.applySettings()
	return a
}

// State returns the current screen
func (a *App) State() Screen {
	return a.state
}

// Settings returns the live settings
func (a *App) Settings() settings.Settings {
	return a.settings
}

// Match returns the current match, nil before the first start
func (a *App) Match() *match.Match {
	return a.match
}

// Quitting reports whether the loop should stop
func (a *App) Quitting() bool {
	return a.quit
}

// Run polls terminal events and ticks at the frame interval until quit
// Settings are saved before returning
func (a *App) Run() error {
	if a.screen == nil {
		return fmt.Errorf("run: no screen")
	}

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	done := make(chan struct{})
	defer close(done)
	// Input polling interacts directly with the terminal
	Go(func() { pollEvents(a.screen, eventChan, done) })

	a.lastTick = time.Now()
	a.draw()
	for !a.quit {
		select {
		case ev := <-eventChan:
			a.HandleEvent(ev, time.Now())
		case now := <-ticker.C:
			a.Tick(now)
		}
	}

	return a.save()
}

// pollEvents forwards terminal events until the screen is finalized or done closes
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent feeds a terminal event to the input tracker
func (a *App) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.renderer.Resize()
		if a.screen != nil {
			a.screen.Sync()
		}
	default:
		a.tracker.HandleEvent(ev, now)
	}
}

// Tick samples input, advances the active screen and draws it
func (a *App) Tick(now time.Time) {
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	dt = max(0, min(dt, parameter.MaxFrameDt))

	f := a.tracker.Frame(now)
	if f.Pressed(input.ActionQuit) {
		a.quit = true
		return
	}

	switch a.state {
	case ScreenMenu:
		a.updateMenu(f)
	case ScreenSettings:
		a.updateSettings(f)
	case ScreenPlaying:
		a.updatePlaying(f, dt)
	case ScreenEnded:
		a.updateEnded(f)
	}

	if !a.quit {
		a.draw()
	}
}

// setState switches screens and drops held input so keys do not leak across
func (a *App) setState(s Screen) {
	if s == a.state {
		return
	}
	log.Printf("screen %s -> %s", a.state, s)
	a.state = s
	a.tracker.Reset()
}

// selection plays the menu interaction cue
func (a *App) selection() {
	if a.speaker != nil {
		a.speaker.Emit(event.GameEvent{Type: event.EventSelection, Player: -1})
	}
}

func (a *App) applySettings() {
	a.renderer.SetStretch(a.settings.Fullscreen)
	if a.speaker != nil {
		a.speaker.SetVolume(a.settings.Volume)
	}
	if a.preview == nil || a.preview.Index != a.settings.Map {
		a.preview = level.Build(a.settings.Map, a.rng)
	}
}

func (a *App) save() error {
	if a.store == nil {
		return nil
	}
	if err := a.store.Save(a.settings); err != nil {
		log.Printf("settings save failed: %v", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// startMatch creates or resets the match on the selected map
func (a *App) startMatch() {
	cfg := a.cfg
	cfg.Map = a.settings.Map
	if a.match == nil {
		a.match = match.New(cfg, a.seed)
	} else {
		a.match.Config = cfg
		a.match.Reset()
	}
	a.setState(ScreenPlaying)
}

func (a *App) draw() {
	switch a.state {
	case ScreenMenu:
		items := make([]string, menuItemCount)
		for i := range items {
			items[i] = menuLabels[i]
		}
		a.renderer.DrawMenu(render.MenuView{Items: items, Selected: int(a.menuSel), Preview: a.preview})
	case ScreenSettings:
		a.renderer.DrawSettings(render.SettingsView{
			Volume:     a.settings.Volume,
			Fullscreen: a.settings.Fullscreen,
			MapName:    level.Name(a.settings.Map),
			Selected:   a.settingsSel,
		})
	case ScreenPlaying, ScreenEnded:
		a.match.SnapshotInto(&a.snap)
		a.renderer.DrawMatch(&a.snap)
	}
	a.renderer.Show()
}
