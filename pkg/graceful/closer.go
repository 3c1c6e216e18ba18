package graceful

import "io"

type closer struct {
	name  string
	c     io.Closer
	onErr func(error)
}

// CloseAfterDrain closes resource in Wait once all shutdown subscribers are done,
// close error is passed to onErr if it is not nil.
//
// Resources are closed in reverse order of registration.
func (s *Shutdown) CloseAfterDrain(name string, c io.Closer, onErr func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closers = append(s.closers, closer{name: name, c: c, onErr: onErr})
}

func (s *Shutdown) closeAll() {
	s.mu.Lock()
	closers := s.closers
	s.closers = nil
	s.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		cl := closers[i]

		if err := cl.c.Close(); err != nil && cl.onErr != nil {
			cl.onErr(err)
		}
	}
}
