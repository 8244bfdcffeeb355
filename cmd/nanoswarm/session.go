package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nanoswarm/audio"
	"github.com/lixenwraith/nanoswarm/engine"
	"github.com/lixenwraith/nanoswarm/input"
	"github.com/lixenwraith/nanoswarm/render"
	"github.com/lixenwraith/nanoswarm/swarm"
)

// session binds the terminal, the driver and the engine for one interactive run
type session struct {
	screen   tcell.Screen
	eng      *swarm.Engine
	driver   *engine.Driver
	player   *audio.Player // nil when audio is unavailable
	renderer *render.ArenaRenderer
	hud      render.HUD
	dirty    bool
}

func newSession(screen tcell.Screen, eng *swarm.Engine, driver *engine.Driver, player *audio.Player) *session {
	s := &session{
		screen:   screen,
		eng:      eng,
		driver:   driver,
		player:   player,
		renderer: render.NewArenaRenderer(screen),
		dirty:    true,
	}
	if player != nil {
		eng.SetObserver(player)
	} else {
		s.hud.Muted = true
	}
	return s
}

// viewport maps screen cells for the current terminal size
func (s *session) viewport() render.Viewport {
	w, h := s.screen.Size()
	return render.NewViewport(w, h, s.eng.Frame().Bound)
}

// handleEvent translates and applies a terminal event, returns false on quit
func (s *session) handleEvent(ev tcell.Event) bool {
	return s.apply(input.Translate(ev, s.viewport()))
}

// apply executes an action against the engine and driver, returns false on quit
func (s *session) apply(a input.Action) bool {
	switch a.Type {
	case input.ActionNone:
		return true
	case input.ActionQuit:
		return false
	case input.ActionTogglePause:
		s.hud.Paused = !s.driver.Toggle()
		s.hud.Message = ""
	case input.ActionStep:
		if !s.driver.IsPaused() {
			s.driver.Pause()
			s.hud.Paused = true
		}
		s.driver.RequestStep()
	case input.ActionSetTarget:
		if err := s.eng.SetTarget(a.X, a.Y); err != nil {
			s.hud.Message = err.Error()
			log.Printf("session: %v", err)
		} else {
			s.hud.Message = ""
		}
	case input.ActionClearTarget:
		s.eng.ClearTarget()
		s.hud.Message = ""
	case input.ActionReset:
		s.driver.RequestReset()
		s.hud.Message = "reset"
	case input.ActionToggleMute:
		s.toggleMute()
	case input.ActionResize:
		s.screen.Sync()
	}
	s.dirty = true
	return true
}

func (s *session) toggleMute() {
	if s.player == nil {
		s.hud.Message = "audio unavailable"
		return
	}
	s.hud.Muted = !s.hud.Muted
	if s.hud.Muted {
		s.eng.SetObserver(nil)
	} else {
		s.eng.SetObserver(s.player)
	}
	s.hud.Message = fmt.Sprintf("audio %s", onOff(!s.hud.Muted))
}

// markDirty requests a redraw on the next frame
func (s *session) markDirty() {
	s.dirty = true
}

// draw renders the latest frame if anything changed since the last draw
func (s *session) draw() {
	if !s.dirty {
		return
	}
	s.dirty = false
	s.renderer.Draw(s.eng.Frame(), s.hud)
	s.screen.Show()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
