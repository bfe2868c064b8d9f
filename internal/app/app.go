// Package app is the root bubbletea model: header, board and help footer.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/tiles/internal/catalog"
	"github.com/llehouerou/tiles/internal/config"
	"github.com/llehouerou/tiles/internal/flip"
	"github.com/llehouerou/tiles/internal/keymap"
	"github.com/llehouerou/tiles/internal/logging"
	"github.com/llehouerou/tiles/internal/state"
	"github.com/llehouerou/tiles/internal/ui/board"
	"github.com/llehouerou/tiles/internal/ui/cards"
	"github.com/llehouerou/tiles/internal/ui/layout"
)

// Options configures New.
type Options struct {
	// Layout overrides the saved and configured layout mode when set.
	Layout string
	// Items defaults to catalog.Default().
	Items []catalog.Item
	// Surfaces defaults to cards.Defaults().
	Surfaces cards.Set
	Logger   *log.Logger
}

// Model is the root application model.
type Model struct {
	Board    board.Model
	Help     help.Model
	Keys     *keymap.Resolver
	StateMgr state.Interface

	Notification       *Notification
	nextNotificationID int64
	ErrorMsg           string

	Width  int
	Height int

	logger *log.Logger
}

// New builds the application from configuration and persisted state.
func New(cfg *config.Config, stateMgr state.Interface, opts Options) (Model, error) {
	if cfg == nil {
		return Model{}, errors.New("nil config")
	}
	if stateMgr == nil {
		return Model{}, errors.New("nil state manager")
	}
	if opts.Layout != "" && !config.ValidLayoutMode(opts.Layout) {
		return Model{}, fmt.Errorf("invalid layout mode %q (want grid or masonry)", opts.Layout)
	}

	logger := logging.OrDiscard(opts.Logger)
	items := opts.Items
	if items == nil {
		items = catalog.Default()
	}
	surfaces := opts.Surfaces
	if surfaces == nil {
		surfaces = cards.Defaults()
	}

	saved, err := stateMgr.LayoutMode()
	if err != nil {
		logger.Warn("saved layout mode unreadable", "err", err)
	}
	mode := resolveLayoutMode(opts.Layout, saved, cfg.GetLayoutConfig().Mode)
	logger.Info("starting", "layout", mode, "items", len(items))

	b := board.New(items, surfaces, stateMgr, boardOptions(cfg, mode, logger))

	h := help.New()
	h.ShortSeparator = "  "

	m := Model{
		Board:    b,
		Help:     h,
		Keys:     keymap.Default(),
		StateMgr: stateMgr,
		logger:   logger,
	}
	m.syncKeys()
	return m, nil
}

// resolveLayoutMode picks the first valid mode: flag, saved, configured.
func resolveLayoutMode(flag, saved, configured string) layout.Mode {
	for _, m := range []string{flag, saved, configured} {
		if config.ValidLayoutMode(m) {
			return layout.Mode(m)
		}
	}
	return layout.ModeGrid
}

func boardOptions(cfg *config.Config, mode layout.Mode, logger *log.Logger) board.Options {
	lc := cfg.GetLayoutConfig()
	ac := cfg.GetAnimationConfig()
	e := ac.Easing
	return board.Options{
		Mode: mode,
		Layout: layout.Opts{
			ColumnWidth:  lc.ColumnWidth,
			Gap:          lc.Gap,
			MinRowHeight: lc.MinRowHeight,
		},
		Animation: flip.Options{
			Duration: ac.Duration(),
			Easing:   flip.CubicBezier(e[0], e[1], e[2], e[3]),
		},
		FrameInterval:     ac.FrameInterval(),
		CancelOnInterrupt: ac.Interrupt == config.InterruptCancel,
		Logger:            logger,
	}
}

// Init starts the clock that keeps live cards current.
func (m Model) Init() tea.Cmd {
	return ClockTickCmd()
}
