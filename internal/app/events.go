package app

// Event is an input event delivered by a window host.
type Event interface {
	isEvent()
}

// Key identifies the keys the loop reacts to. Everything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
)

// Button identifies a mouse button.
type Button int

const (
	ButtonOther Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Closed reports that the user asked to close the window.
type Closed struct{}

// KeyPressed reports a key going down.
type KeyPressed struct {
	Key Key
}

// MousePressed reports a button going down at surface coordinates (X, Y).
// Hosts apply their own pixel to surface mapping before emitting it.
type MousePressed struct {
	Button Button
	X, Y   float64
}

func (Closed) isEvent()       {}
func (KeyPressed) isEvent()   {}
func (MousePressed) isEvent() {}
