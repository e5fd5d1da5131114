package app

// Clipboard writes text to a clipboard the user can paste from.
// Implemented by infrastructure (system clipboard or OSC 52 terminal escape).
type Clipboard interface {
	WriteAll(text string) error
}
