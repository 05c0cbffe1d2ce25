package config

import (
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/zerr"
)

// supportedVersion is the only wsg.yaml schema version understood by the loader.
const supportedVersion = "1"

// Wsgfile represents the structure of the wsg.yaml configuration file.
type Wsgfile struct {
	Version     string          `yaml:"version"`
	Recognizers []RecognizerDTO `yaml:"recognizers"`
	Disable     []string        `yaml:"disable"`
}

// RecognizerDTO represents a user-defined recognizer in the configuration.
type RecognizerDTO struct {
	Name      string      `yaml:"name"`
	Presence  []MarkerDTO `yaml:"presence"`
	Deletable []MarkerDTO `yaml:"deletable"`
}

// MarkerDTO is a single marker path. Exactly one of File or Dir must be set.
type MarkerDTO struct {
	File string `yaml:"file"`
	Dir  string `yaml:"dir"`
}

func (m MarkerDTO) toDomain() (domain.PathSignature, error) {
	switch {
	case m.File != "" && m.Dir != "":
		err := zerr.Wrap(domain.ErrInvalidRecognizer, "marker sets both 'file' and 'dir'")
		return domain.PathSignature{}, zerr.With(err, "file", m.File)
	case m.File != "":
		return domain.File(m.File), nil
	case m.Dir != "":
		return domain.Dir(m.Dir), nil
	default:
		return domain.PathSignature{}, zerr.Wrap(domain.ErrInvalidRecognizer, "marker sets neither 'file' nor 'dir'")
	}
}

func (r RecognizerDTO) toDomain() (domain.Recognizer, error) {
	rec := domain.Recognizer{Name: r.Name}

	for _, m := range r.Presence {
		sig, err := m.toDomain()
		if err != nil {
			return domain.Recognizer{}, zerr.With(err, "recognizer", r.Name)
		}
		rec.Presence = append(rec.Presence, sig)
	}
	for _, m := range r.Deletable {
		sig, err := m.toDomain()
		if err != nil {
			return domain.Recognizer{}, zerr.With(err, "recognizer", r.Name)
		}
		rec.Deletable = append(rec.Deletable, sig)
	}

	if err := rec.Validate(); err != nil {
		return domain.Recognizer{}, err
	}
	return rec, nil
}
