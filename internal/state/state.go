package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/tiles/internal/db"
	"github.com/llehouerou/tiles/internal/order"
)

const (
	appName    = "tiles"
	dbFileName = "tiles.db"

	orderKey      = "module-order"
	layoutModeKey = "layout-mode"
)

// Manager is the durable key-value slot backing the dashboard state.
type Manager struct {
	db *sql.DB
}

// Open opens (creating if needed) the state database at path. An empty path
// selects the XDG data location.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = getDBPath()
		if err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	return newManager(db)
}

func newManager(db *sql.DB) (*Manager, error) {
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// LoadOrder returns the persisted item order. Missing, unreadable and
// malformed data all report false so the caller falls back to the default.
func (m *Manager) LoadOrder() ([]string, bool) {
	raw, ok, err := getValue(m.db, orderKey)
	if err != nil || !ok {
		return nil, false
	}
	return order.Decode(raw)
}

// SaveOrder persists ids as the current item order.
func (m *Manager) SaveOrder(ids []string) error {
	raw, err := order.Encode(ids)
	if err != nil {
		return err
	}
	return setValue(m.db, orderKey, raw)
}

// ClearOrder forgets the persisted order.
func (m *Manager) ClearOrder() error {
	return deleteValue(m.db, orderKey)
}

// LayoutMode returns the saved layout mode, or "" if none was saved.
func (m *Manager) LayoutMode() (string, error) {
	mode, _, err := getValue(m.db, layoutModeKey)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", layoutModeKey, err)
	}
	return mode, nil
}

// SaveLayoutMode persists the layout mode.
func (m *Manager) SaveLayoutMode(mode string) error {
	return setValue(m.db, layoutModeKey, mode)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
