// Package account describes account domain.
package account

import "context"

// Finder finds accounts.
type Finder interface {
	FindByID(ctx context.Context, id string) (Entity, error)
}

// Registerer opens accounts.
type Registerer interface {
	Register(ctx context.Context, r Registration) (Entity, error)
}

// Editor updates account profiles.
type Editor interface {
	Edit(ctx context.Context, id string, p Patch) (Entity, error)
}
