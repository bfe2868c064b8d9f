package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/tiles/internal/app"
	"github.com/llehouerou/tiles/internal/config"
	"github.com/llehouerou/tiles/internal/errmsg"
	"github.com/llehouerou/tiles/internal/icons"
	"github.com/llehouerou/tiles/internal/logging"
	"github.com/llehouerou/tiles/internal/state"
)

// opError carries the failed operation so main can format it.
type opError struct {
	op     errmsg.Op
	target string
	err    error
}

func (e *opError) Error() string { return errmsg.FormatWith(e.op, e.target, e.err) }
func (e *opError) Unwrap() error { return e.err }

type flags struct {
	configPath string
	layout     string
	reset      bool
	verbose    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:          "tiles",
		Short:        "A dashboard of cards you can rearrange by dragging",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}

	root.Flags().StringVarP(&f.configPath, "config", "c", "", "extra config file, loaded last")
	root.Flags().StringVarP(&f.layout, "layout", "l", "", "layout mode: grid or masonry")
	root.Flags().BoolVar(&f.reset, "reset", false, "forget the saved card order")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")

	return root
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return &opError{errmsg.OpConfigLoad, f.configPath, err}
	}

	icons.Init(cfg.GetUIConfig().Icons)

	level := logging.ParseLevel(cfg.Log.Level)
	if f.verbose {
		level = log.DebugLevel
	}
	logger, logFile, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return &opError{errmsg.OpLogOpen, cfg.Log.File, err}
	}
	defer logFile.Close()
	ctx = logging.WithLogger(ctx, logger)

	stateMgr, err := state.Open(cfg.State.Path)
	if err != nil {
		return &opError{errmsg.OpStateOpen, cfg.State.Path, err}
	}
	defer stateMgr.Close()

	if f.reset {
		if err := stateMgr.ClearOrder(); err != nil {
			return &opError{op: errmsg.OpOrderClear, err: err}
		}
		logger.Info("card order reset")
	}

	return runProgram(ctx, cfg, stateMgr, f.layout)
}

func runProgram(ctx context.Context, cfg *config.Config, stateMgr state.Interface, layout string) error {
	logger := logging.FromContext(ctx)

	m, err := app.New(cfg, stateMgr, app.Options{Layout: layout, Logger: logger})
	if err != nil {
		return &opError{op: errmsg.OpInitialize, err: err}
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}
