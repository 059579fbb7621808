package tui

type ApplicationState int

const (
	// StateMenu waits for the next key of the active session.
	StateMenu ApplicationState = iota
	// StatePaused shows a leaf confirmation and discards input until the pause ends.
	StatePaused
	StateExiting
)
