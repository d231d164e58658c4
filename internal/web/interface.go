package web

import "context"

// Server is the browser UI plus its JSON API.
type Server interface {
	Listen(addr string) error
	Shutdown(ctx context.Context) error
}
