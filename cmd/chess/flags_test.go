package main

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/config"
	chesserrors "github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(fenFlag, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreString(colorFlag, "never")()
	defer saveRestoreBool(flipFlag, true)()
	defer saveRestoreBool(noTargets, true)()
	defer saveRestoreInt(verbosity, 2)()
	defer saveRestoreString(logFile, "chess.log")()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.InitialFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.Display, config.DisplayConfig{Color: config.ColorNever, Flipped: true})
	testutil.AssertEqual(t, cfg.Log, config.LogConfig{Verbosity: 2, File: "chess.log"})
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertEqual(t, cfg.InitialFEN, config.DefaultFEN)
	testutil.AssertEqual(t, cfg.Display, *config.NewDisplayConfig())
}

func TestApplyFlags_Invalid(t *testing.T) {
	t.Run("colour mode", func(t *testing.T) {
		defer saveRestoreString(colorFlag, "rainbow")()
		testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), chesserrors.ErrInvalidConfig)
	})

	t.Run("verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 7)()
		testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), chesserrors.ErrInvalidConfig)
	})
}
