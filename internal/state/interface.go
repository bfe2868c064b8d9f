// internal/state/interface.go
package state

import (
	"github.com/llehouerou/tiles/internal/order"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	order.Store
	ClearOrder() error
	LayoutMode() (string, error)
	SaveLayoutMode(mode string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
