package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"

	customid "github.com/Jxpro/custom-rustdesk"
	"github.com/Jxpro/custom-rustdesk/internal/config"
	"github.com/Jxpro/custom-rustdesk/machine"
)

// errNoSeed is returned when no seed was given and the machine identifier is unavailable.
var errNoSeed = errors.New("no seed: pass --uuid or set " + config.EnvUUID)

// app holds the state shared by the rustdesk-id commands.
type app struct {
	cfg *config.Config

	seed        string
	noClipboard bool
	verbose     bool
	debug       bool

	logger *slog.Logger
	svc    *customid.Service

	lookup    func(context.Context) (string, error)
	clipboard func(string) error
}

func newApp(cfg *config.Config) *app {
	return &app{
		cfg:       cfg,
		lookup:    machine.Lookup,
		clipboard: clipboard.WriteAll,
	}
}

// init builds the logger and service once flags are parsed.
func (a *app) init(stderr io.Writer) error {
	level := a.cfg.SlogLevel()
	if a.verbose && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	if a.debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	svc, err := customid.NewService(customid.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.svc = svc
	return nil
}

// resolveSeed returns the --uuid flag, then RUSTDESK_ID_UUID, then the machine identifier.
// Explicit seeds are passed through untouched so validation reports them as given.
func (a *app) resolveSeed(ctx context.Context) (string, error) {
	if a.seed != "" {
		a.logger.DebugContext(ctx, "using seed from flag")
		return a.seed, nil
	}
	if a.cfg.UUID != "" {
		a.logger.DebugContext(ctx, "using seed from environment", slog.String("variable", config.EnvUUID))
		return a.cfg.UUID, nil
	}

	provider, err := machine.NewProvider(ctx, machine.WithLookup(a.lookup))
	if err != nil {
		a.logger.DebugContext(ctx, "machine seed unavailable", slog.Any("error", err))
		return "", fmt.Errorf("%w (%v)", errNoSeed, err)
	}
	a.logger.InfoContext(ctx, "using machine identifier as seed")
	return provider.Seed()
}

// copyResult copies text to the clipboard unless disabled. Failures are reported, not fatal.
func (a *app) copyResult(ctx context.Context, w io.Writer, text string) {
	if a.noClipboard || !a.cfg.Clipboard {
		return
	}
	if err := a.clipboard(text); err != nil {
		a.logger.DebugContext(ctx, "clipboard write failed", slog.Any("error", err))
		printClipboardFailed(w)
		return
	}
	printClipboardCopied(w)
}
