package graceful

import (
	"context"

	"github.com/valyala/fasthttp"
)

// WaitToShutdownFastHTTP synchronously waits for shutdown signal and drains fasthttp server.
//
// Resources registered with CloseAfterDrain stay open until server is drained.
func (s *Shutdown) WaitToShutdownFastHTTP(server *fasthttp.Server, subscriber string) error {
	return s.drain(subscriber, server.ShutdownWithContext)
}

// drain calls stop within Timeout once shutdown is invoked and then confirms subscriber is done.
func (s *Shutdown) drain(subscriber string, stop func(ctx context.Context) error) error {
	shutdown, done := s.ShutdownSignal(subscriber)

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	err := stop(ctx)

	close(done)

	return err
}
