package app

import (
	"fmt"
	"sort"

	"stochlife/internal/render"
)

// Host owns a window and runs a Session until it stops being alive.
type Host interface {
	Run(s *Session) error
}

// HostFactory constructs a Host from the command-line configuration.
type HostFactory func(cfg *Config) (Host, error)

var hosts = map[string]HostFactory{}

// RegisterHost adds a host factory under the provided name.
func RegisterHost(name string, f HostFactory) {
	if name == "" || f == nil {
		return
	}
	hosts[name] = f
}

// Hosts exposes the registry of available hosts.
func Hosts() map[string]HostFactory {
	return hosts
}

// HostNames returns the registered host names sorted.
func HostNames() []string {
	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultHost picks the preferred host among those compiled in.
func DefaultHost() string {
	for _, name := range []string{"ebiten", "sdl", "term"} {
		if _, ok := hosts[name]; ok {
			return name
		}
	}
	return ""
}

// Window is a pull-style host: events are polled and frames presented
// explicitly.
type Window interface {
	render.Surface
	// PollEvent returns the next pending event, or false when none is queued.
	PollEvent() (Event, bool)
	// Present shows the frame drawn since the last call.
	Present() error
}

// Drive runs the frame loop on w: drain events, advance unless paused,
// repaint, present. It returns when the session stops being alive or the
// window fails to present.
func Drive(s *Session, w Window) error {
	for s.Alive() {
		for {
			ev, ok := w.PollEvent()
			if !ok {
				break
			}
			s.Handle(ev)
		}
		s.Tick()
		s.Paint(w)
		if err := w.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", s.Generation(), err)
		}
	}
	return nil
}
