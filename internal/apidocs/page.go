package apidocs

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Page is a composition root that hosts the viewer.
//
// Load handlers run once, page-wide slots are assigned once.
type Page struct {
	once    sync.Once
	loadErr error

	mu       sync.Mutex
	loaded   bool
	handlers []func(ctx context.Context) error
	slots    map[string]Handle
}

// NewPage creates an empty page.
func NewPage() *Page {
	return &Page{
		slots: make(map[string]Handle),
	}
}

// OnLoad registers a handler to run when page is loaded.
func (p *Page) OnLoad(fn func(ctx context.Context) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return ErrPageAlreadyLoaded
	}

	p.handlers = append(p.handlers, fn)

	return nil
}

// Load fires page load event.
//
// Handlers are invoked on first call only, subsequent calls return the first result.
func (p *Page) Load(ctx context.Context) error {
	p.once.Do(func() {
		p.mu.Lock()
		p.loaded = true
		handlers := p.handlers
		p.handlers = nil
		p.mu.Unlock()

		var errs []error

		for _, h := range handlers {
			if err := h(ctx); err != nil {
				errs = append(errs, err)
			}
		}

		p.loadErr = errors.Join(errs...)
	})

	return p.loadErr
}

// Assign sets page-wide slot value, a slot can only be assigned once.
func (p *Page) Assign(name string, h Handle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.slots == nil {
		p.slots = make(map[string]Handle)
	}

	if _, ok := p.slots[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyAssigned, name)
	}

	p.slots[name] = h

	return nil
}

// Lookup returns page-wide slot value.
func (p *Page) Lookup(name string) (Handle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.slots[name]

	return h, ok
}

// UI returns mounted viewer handle or nil if page is not loaded.
func (p *Page) UI() Handle {
	h, _ := p.Lookup(HandleName)

	return h
}
