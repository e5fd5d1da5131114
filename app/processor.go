package app

import (
	"context"

	"github.com/CrestNiraj12/threadreader/domain"
)

// ThreadProcessor turns a thread URL into plain text via the server.
type ThreadProcessor interface {
	// Process submits the URL and returns the collapsed thread.
	// Non-2xx replies are returned as *domain.APIError; any other error is
	// a transport failure.
	Process(ctx context.Context, url string) (domain.ThreadResult, error)
}
