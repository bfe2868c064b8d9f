// internal/state/mock.go
package state

import (
	"github.com/llehouerou/tiles/internal/order"
)

// Mock is a test double for Manager. It keeps the raw stored text so tests
// can plant corrupt data.
type Mock struct {
	RawOrder string
	HasOrder bool
	Mode     string
	SaveErr  error
	// LayoutErr is returned by SaveLayoutMode when set.
	LayoutErr error
	// ModeReadErr is returned by LayoutMode when set.
	ModeReadErr error
	Saves       [][]string
	closed      bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

// NewMockWithOrder creates a mock that already holds ids.
func NewMockWithOrder(ids []string) *Mock {
	m := &Mock{}
	raw, _ := order.Encode(ids)
	m.RawOrder = raw
	m.HasOrder = true
	return m
}

func (m *Mock) LoadOrder() ([]string, bool) {
	if !m.HasOrder {
		return nil, false
	}
	return order.Decode(m.RawOrder)
}

func (m *Mock) SaveOrder(ids []string) error {
	m.Saves = append(m.Saves, append([]string(nil), ids...))
	if m.SaveErr != nil {
		return m.SaveErr
	}
	raw, err := order.Encode(ids)
	if err != nil {
		return err
	}
	m.RawOrder = raw
	m.HasOrder = true
	return nil
}

func (m *Mock) ClearOrder() error {
	m.RawOrder = ""
	m.HasOrder = false
	return nil
}

func (m *Mock) LayoutMode() (string, error) {
	if m.ModeReadErr != nil {
		return "", m.ModeReadErr
	}
	return m.Mode, nil
}

func (m *Mock) SaveLayoutMode(mode string) error {
	if m.LayoutErr != nil {
		return m.LayoutErr
	}
	m.Mode = mode
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// IsClosed returns whether Close was called.
func (m *Mock) IsClosed() bool {
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
