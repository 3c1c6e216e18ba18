package service

import (
	"github.com/mrth1995/go-mockva/internal/domain/account"
	"github.com/mrth1995/go-mockva/internal/domain/transfer"
)

// AccountFinderProvider is a service locator provider.
type AccountFinderProvider interface {
	AccountFinder() account.Finder
}

// AccountRegistererProvider is a service locator provider.
type AccountRegistererProvider interface {
	AccountRegisterer() account.Registerer
}

// AccountEditorProvider is a service locator provider.
type AccountEditorProvider interface {
	AccountEditor() account.Editor
}

// TransferrerProvider is a service locator provider.
type TransferrerProvider interface {
	Transferrer() transfer.Transferrer
}
