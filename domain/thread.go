package domain

// ThreadResult is the plain-text rendition of a thread returned by the server.
type ThreadResult struct {
	Text   string
	Cached bool // True when the server served a previously stored result
}
