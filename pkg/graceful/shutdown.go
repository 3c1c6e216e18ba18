// Package graceful coordinates termination of long-running resources.
package graceful

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultTimeout is a default Timeout to wait for graceful termination.
const DefaultTimeout = 10 * time.Second

// Shutdown manages graceful shutdown.
type Shutdown struct {
	Timeout time.Duration

	mu             sync.Mutex
	closed         bool
	subscribers    map[string]chan struct{}
	shutdownSignal chan struct{}
	closers        []closer
}

// signal returns shutdown channel, mu must be held.
func (s *Shutdown) signal() chan struct{} {
	if s.shutdownSignal == nil {
		s.shutdownSignal = make(chan struct{})
	}

	return s.shutdownSignal
}

// Close invokes shutdown.
func (s *Shutdown) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.signal())
	}
}

// Wait blocks until shutdown is invoked and all subscribers are done, then closes resources.
func (s *Shutdown) Wait() error {
	s.mu.Lock()
	sig := s.signal()
	s.mu.Unlock()

	<-sig

	err := s.shutdown()

	s.closeAll()

	return err
}

// EnableGracefulShutdown invokes shutdown on SIGTERM or SIGINT.
func (s *Shutdown) EnableGracefulShutdown() {
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-exit
		signal.Stop(exit)
		s.Close()
	}()
}

func (s *Shutdown) timeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Timeout == 0 {
		return DefaultTimeout
	}

	return s.Timeout
}

func (s *Shutdown) shutdown() error {
	deadline := time.After(s.timeout())

	s.mu.Lock()
	subscribers := make(map[string]chan struct{}, len(s.subscribers))

	for name, done := range s.subscribers {
		subscribers[name] = done
	}
	s.mu.Unlock()

	for subscriber, done := range subscribers {
		select {
		case <-done:
			continue
		case <-deadline:
			return fmt.Errorf("shutdown deadline exceeded while waiting for %s", subscriber)
		}
	}

	return nil
}

// ShutdownSignal returns a channel that is closed when shutdown is invoked and
// a confirmation channel that should be closed once subscriber has finished the shutdown.
func (s *Shutdown) ShutdownSignal(subscriber string) (shutdown <-chan struct{}, done chan<- struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscribers == nil {
		s.subscribers = make(map[string]chan struct{})
	}

	if d, ok := s.subscribers[subscriber]; ok {
		return s.signal(), d
	}

	d := make(chan struct{}, 1)
	s.subscribers[subscriber] = d

	return s.signal(), d
}
