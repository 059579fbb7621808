package tui

type pauseElapsedMsg struct{}
