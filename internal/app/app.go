// Package app implements the application layer for wsg.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	loader   ports.RecognizerLoader
	scanner  ports.Scanner
	cache    ports.ResultCache
	verifier ports.Verifier
	deleter  ports.Deleter
	renderer ports.Renderer
	prompter ports.Prompter
	volumes  ports.VolumeInspector
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.RecognizerLoader,
	scanner ports.Scanner,
	cache ports.ResultCache,
	verifier ports.Verifier,
	deleter ports.Deleter,
	renderer ports.Renderer,
	prompter ports.Prompter,
	volumes ports.VolumeInspector,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		scanner:  scanner,
		cache:    cache,
		verifier: verifier,
		deleter:  deleter,
		renderer: renderer,
		prompter: prompter,
		volumes:  volumes,
		logger:   log,
	}
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Include []string
	Exclude []string
	TTL     time.Duration
	NoCache bool
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	TTL time.Duration
	Yes bool
}

// List scans root, or reuses a fresh cached scan, and prints the matches.
func (a *App) List(ctx context.Context, root string, opts ListOptions) error {
	registry, err := a.registry(opts.Include, opts.Exclude)
	if err != nil {
		return err
	}

	// A filtered listing must not be served from, nor leave behind, an
	// unfiltered entry: clean indices refer to the last listing shown.
	filtered := len(opts.Include) > 0 || len(opts.Exclude) > 0
	reuse := !opts.NoCache && !filtered

	if reuse {
		results, readErr := a.cache.Read(root, opts.TTL)
		if readErr == nil {
			a.logger.Debug(fmt.Sprintf("using cached scan of %s", root))
			a.renderer.Listing(results)
			a.showVolume(ctx, root)
			return nil
		}
		a.logger.Debug(fmt.Sprintf("scanning %s: %v", root, readErr))
		// An unreadable entry looks fresh to Write and would never be replaced.
		if !errors.Is(readErr, domain.ErrCacheMissing) && !errors.Is(readErr, domain.ErrCacheExpired) {
			a.forget(root)
		}
	} else {
		a.forget(root)
	}

	results, err := a.scanner.Scan(ctx, root, registry)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "scan failed"), "root", root)
	}

	if location, writeErr := a.cache.Write(root, results, opts.TTL); writeErr != nil {
		a.logger.Warn(fmt.Sprintf("could not cache scan results: %v", writeErr))
	} else {
		a.logger.Debug("cached scan results at " + location)
	}

	a.renderer.Listing(results)
	a.showVolume(ctx, root)
	return nil
}

// Clean deletes the artifacts of the cached matches selected by ids.
//
//nolint:cyclop // orchestration function
func (a *App) Clean(ctx context.Context, root string, ids []domain.Index, opts CleanOptions) error {
	if len(ids) == 0 {
		return domain.ErrNoIndicesSpecified
	}

	results, err := a.cache.Read(root, opts.TTL)
	if err != nil {
		return errors.Join(domain.ErrNoUsableCache, err)
	}

	selected, unknown := domain.FilterByIndices(results, ids)
	if len(unknown) > 0 {
		err := zerr.Wrap(domain.ErrUnknownIndex, "cannot select cached results")
		err = zerr.With(err, "indices", fmt.Sprint(unknown))
		return zerr.With(err, "available", len(results))
	}
	if len(selected) == 0 {
		a.logger.Info("nothing to clean")
		return nil
	}

	live, stale := a.verifier.Verify(selected)
	for _, s := range stale {
		for _, r := range s.Results {
			a.logger.Warn(fmt.Sprintf("skipping %s: %s", r.Path, r.ErrorMessage))
		}
	}

	if len(live) > 0 {
		a.renderer.Plan(live)

		if !opts.Yes {
			question := fmt.Sprintf("Delete %d path(s), freeing %s?", countPaths(live), domain.FormatBytes(domain.TotalSize(live)))
			confirmed, err := a.prompter.Confirm(ctx, question)
			if err != nil {
				return err
			}
			if !confirmed {
				a.logger.Info("aborted, nothing was deleted")
				return nil
			}
		}
	}

	var selections []domain.DeleteOperationSelection
	if len(live) > 0 {
		selections = a.deleter.Execute(live)
	}
	selections = append(selections, stale...)
	a.renderer.Report(selections)
	a.forget(root)
	a.showVolume(ctx, root)

	if _, failed := domain.CountOutcomes(selections); failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrPartialDeletion, "clean finished with failures"), "failed", failed)
	}
	return nil
}

// Recognizers prints the recognizers that a scan with the same filters would use.
func (a *App) Recognizers(_ context.Context, include, exclude []string) error {
	registry, err := a.registry(include, exclude)
	if err != nil {
		return err
	}
	a.renderer.Recognizers(registry)
	return nil
}

// ClearCache removes every cached scan.
func (a *App) ClearCache(_ context.Context) error {
	if err := a.cache.ClearAll(); err != nil {
		return err
	}
	a.logger.Info("cache cleared")
	return nil
}

// InvalidateCache removes the cached scan of root.
func (a *App) InvalidateCache(_ context.Context, root string) error {
	err := a.cache.Invalidate(root)
	switch {
	case err == nil:
		a.logger.Info("cache entry removed for " + root)
		return nil
	case errors.Is(err, domain.ErrCacheMissing):
		a.logger.Info("no cache entry for " + root)
		return nil
	default:
		return err
	}
}

// ConfigureLogging applies the global logging flags to the logger when it supports them.
func (a *App) ConfigureLogging(debug, json bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok && json {
		l.SetJSON(true)
	}
	if l, ok := a.logger.(interface{ SetLevel(slog.Level) }); ok && debug {
		l.SetLevel(slog.LevelDebug)
	}
}

func (a *App) registry(include, exclude []string) (*domain.Registry, error) {
	registry, err := a.loader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load recognizers")
	}
	if len(include) == 0 && len(exclude) == 0 {
		return registry, nil
	}
	return registry.Filter(include, exclude)
}

// forget drops the cached scan of root. Failures only warrant a warning.
func (a *App) forget(root string) {
	if err := a.cache.Invalidate(root); err != nil && !errors.Is(err, domain.ErrCacheMissing) {
		a.logger.Warn(fmt.Sprintf("could not invalidate cache: %v", err))
	}
}

// showVolume prints the free space on the volume of root when it can be read.
func (a *App) showVolume(ctx context.Context, root string) {
	usage, err := a.volumes.Usage(ctx, root)
	if err != nil {
		a.logger.Debug(fmt.Sprintf("skipping volume usage: %v", err))
		return
	}
	a.renderer.Volume(usage)
}

func countPaths(results []domain.MatchResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Deletable)
	}
	return n
}
