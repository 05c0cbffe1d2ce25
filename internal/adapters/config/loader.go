// Package config provides the recognizer registry loader for wsg.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecognizerLoader = (*Loader)(nil)

// Loader implements ports.RecognizerLoader using the built-in recognizers
// and an optional wsg.yaml file.
type Loader struct {
	Logger ports.Logger
	// UserPath is consulted when the working directory has no wsg.yaml.
	// An empty value disables the lookup.
	UserPath string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, UserPath: domain.UserConfigPath()}
}

// Load returns the built-in recognizers, minus the disabled ones, followed by
// the recognizers declared in the first wsg.yaml found.
func (l *Loader) Load(cwd string) (*domain.Registry, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		return domain.NewRegistry(Builtins()...)
	}

	l.Logger.Debug("loading recognizers from " + configPath)

	var wsgfile Wsgfile
	if err := readAndUnmarshalYAML(configPath, &wsgfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	registry, err := l.buildRegistry(&wsgfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return registry, nil
}

// findConfiguration returns the path of the configuration to use, or an empty
// string when there is none.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	candidates := []string{filepath.Join(cwd, domain.ConfigFileName)}
	if l.UserPath != "" {
		candidates = append(candidates, l.UserPath)
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}
	}
	return "", nil
}

func (l *Loader) buildRegistry(wsgfile *Wsgfile) (*domain.Registry, error) {
	if wsgfile.Version != "" && wsgfile.Version != supportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigVersion, "cannot load recognizers"), "version", wsgfile.Version)
	}

	builtins := Builtins()
	disabled := make(map[string]bool, len(wsgfile.Disable))
	for _, name := range wsgfile.Disable {
		key := strings.ToLower(strings.TrimSpace(name))
		if !slices.ContainsFunc(builtins, func(r domain.Recognizer) bool { return strings.ToLower(r.Name) == key }) {
			l.Logger.Warn(fmt.Sprintf("'disable' names unknown built-in recognizer %q, ignoring", name))
			continue
		}
		disabled[key] = true
	}

	registry, err := domain.NewRegistry()
	if err != nil {
		return nil, err
	}
	for _, rec := range builtins {
		if disabled[strings.ToLower(rec.Name)] {
			continue
		}
		if err := registry.Add(rec); err != nil {
			return nil, err
		}
	}

	for i, dto := range wsgfile.Recognizers {
		rec, err := dto.toDomain()
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		if err := registry.Add(rec); err != nil {
			return nil, zerr.With(err, "index", i)
		}
	}

	if registry.Len() == 0 {
		return nil, zerr.Wrap(domain.ErrNoRecognizers, "every built-in recognizer is disabled and none are declared")
	}
	return registry, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is either cwd-relative or the user config dir
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
