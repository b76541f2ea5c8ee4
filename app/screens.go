package app

import (
	"log"

	"github.com/lixenwraith/borof-pani/input"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/render"
	"github.com/lixenwraith/borof-pani/settings"
)

// cycle moves an index by delta within [0,n)
func cycle(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

func (a *App) updateMenu(f input.Frame) {
	switch {
	case f.Pressed(input.ActionBack):
		a.quit = true
		return
	case f.Pressed(input.ActionNext):
		a.menuSel = MenuItem(cycle(int(a.menuSel), 1, int(menuItemCount)))
		a.selection()
	case f.Pressed(input.ActionP1Jump):
		a.menuSel = MenuItem(cycle(int(a.menuSel), -1, int(menuItemCount)))
		a.selection()
	case f.Pressed(input.ActionConfirm):
		a.activateMenu(a.menuSel)
	case f.Pressed(input.ActionSettings):
		a.activateMenu(MenuSettings)
	case f.Pressed(input.ActionToggleMap):
		a.settings.NextMap()
		a.applySettings()
		a.selection()
	}

	if f.Click() {
		if hit := a.renderer.HitTest(f.Pointer()); hit.Kind == render.HitMenuItem {
			a.menuSel = MenuItem(hit.Index)
			a.activateMenu(a.menuSel)
		}
	}
}

func (a *App) activateMenu(item MenuItem) {
	a.selection()
	switch item {
	case MenuStart:
		a.startMatch()
	case MenuSettings:
		a.settingsSel = render.SettingsVolume
		a.setState(ScreenSettings)
	case MenuQuit:
		a.quit = true
	}
}

func (a *App) updateSettings(f input.Frame) {
	before := a.settings

	switch {
	case f.Pressed(input.ActionBack):
		a.leaveSettings()
		return
	case f.Pressed(input.ActionNext):
		a.settingsSel = render.SettingsRow(cycle(int(a.settingsSel), 1, int(render.SettingsRowCount)))
		a.selection()
	case f.Pressed(input.ActionP1Jump):
		a.settingsSel = render.SettingsRow(cycle(int(a.settingsSel), -1, int(render.SettingsRowCount)))
		a.selection()
	case f.Pressed(input.ActionP1Left):
		a.adjustRow(a.settingsSel, -1)
	case f.Pressed(input.ActionP1Right):
		a.adjustRow(a.settingsSel, 1)
	case f.Pressed(input.ActionConfirm):
		if a.activateRow(a.settingsSel) {
			return
		}
	case f.Pressed(input.ActionVolumeUp):
		a.settings.AdjustVolume(settings.VolumeStep)
	case f.Pressed(input.ActionVolumeDown):
		a.settings.AdjustVolume(-settings.VolumeStep)
	case f.Pressed(input.ActionToggleFullscreen):
		a.settings.Fullscreen = !a.settings.Fullscreen
	case f.Pressed(input.ActionToggleMap):
		a.settings.NextMap()
	case f.Pressed(input.ActionResetDefaults):
		a.settings = settings.Default()
	}

	a.settingsPointer(f)

	if a.settings != before {
		a.applySettings()
		a.selection()
	}
}

// settingsPointer handles clicks on rows and dragging on the volume slider
func (a *App) settingsPointer(f input.Frame) {
	if !f.Click() && !f.ClickHeld() {
		return
	}
	hit := a.renderer.HitTest(f.Pointer())
	switch hit.Kind {
	case render.HitVolumeBar:
		a.settingsSel = render.SettingsVolume
		a.settings.Volume = hit.Fraction
		a.settings.Clamp()
	case render.HitSettingsRow:
		if !f.Click() {
			return
		}
		a.settingsSel = render.SettingsRow(hit.Index)
		a.activateRow(a.settingsSel)
	}
}

// adjustRow applies left/right to the selected row
func (a *App) adjustRow(row render.SettingsRow, dir int) {
	switch row {
	case render.SettingsVolume:
		a.settings.AdjustVolume(float64(dir) * settings.VolumeStep)
	case render.SettingsFullscreen:
		a.settings.Fullscreen = !a.settings.Fullscreen
	case render.SettingsMap:
		a.settings.Map = cycle(a.settings.Map, dir, parameter.MapCount)
	}
}

// activateRow applies confirm to a row, reporting whether the screen was left
func (a *App) activateRow(row render.SettingsRow) bool {
	switch row {
	case render.SettingsFullscreen:
		a.settings.Fullscreen = !a.settings.Fullscreen
	case render.SettingsMap:
		a.settings.NextMap()
	case render.SettingsReset:
		a.settings = settings.Default()
	case render.SettingsBack:
		a.leaveSettings()
		return true
	}
	return false
}

// leaveSettings persists the settings and returns to the menu
func (a *App) leaveSettings() {
	a.applySettings()
	a.selection()
	if err := a.save(); err != nil {
		log.Printf("leaving settings: %v", err)
	}
	a.setState(ScreenMenu)
}

func (a *App) updatePlaying(f input.Frame, dt float64) {
	if f.Pressed(input.ActionBack) {
		log.Printf("match %s abandoned at round %d", a.match.ID, a.match.Round)
		a.setState(ScreenMenu)
		return
	}

	a.match.Advance(f, dt)
	a.match.Events.Drain(a.speaker)

	if a.match.Ended {
		a.setState(ScreenEnded)
	}
}

func (a *App) updateEnded(f input.Frame) {
	back := f.Pressed(input.ActionConfirm) || f.Pressed(input.ActionBack)
	if f.Click() && a.renderer.HitTest(f.Pointer()).Kind == render.HitBackToMenu {
		back = true
	}
	if back {
		a.selection()
		a.setState(ScreenMenu)
	}
}
