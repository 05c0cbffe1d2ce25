package fs

import (
	"fmt"
	"os"

	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
)

var _ ports.Deleter = (*Deleter)(nil)

// unsupportedTypeMessage is recorded for entries that are neither directories, files nor links.
const unsupportedTypeMessage = "unsupported file type"

// Deleter removes deletable paths and records the outcome of each one.
type Deleter struct {
	logger ports.Logger
}

// NewDeleter creates a new Deleter.
func NewDeleter(logger ports.Logger) *Deleter {
	return &Deleter{logger: logger}
}

// Execute deletes every deletable path of every match. A failing path is
// recorded and the batch continues.
func (d *Deleter) Execute(selection []domain.MatchResult) []domain.DeleteOperationSelection {
	selections := make([]domain.DeleteOperationSelection, 0, len(selection))

	for _, match := range selection {
		op := domain.DeleteOperationSelection{
			Name:      match.Recognizer.Name,
			Directory: match.Directory,
			Results:   make([]domain.DeleteOperationResult, 0, len(match.Deletable)),
		}
		for _, path := range match.Deletable {
			op.Results = append(op.Results, d.remove(path))
		}
		selections = append(selections, op)
	}

	return selections
}

func (d *Deleter) remove(path string) domain.DeleteOperationResult {
	info, err := os.Lstat(path)
	if err != nil {
		return d.failed(path, err.Error())
	}

	mode := info.Mode()
	switch {
	case mode.IsDir():
		err = os.RemoveAll(path)
	case mode.IsRegular(), mode&os.ModeSymlink != 0:
		err = os.Remove(path)
	default:
		return d.failed(path, unsupportedTypeMessage)
	}
	if err != nil {
		return d.failed(path, err.Error())
	}

	d.logger.Debug(fmt.Sprintf("deleted %s", path))
	return domain.DeleteOperationResult{Path: path, Success: true}
}

func (d *Deleter) failed(path, msg string) domain.DeleteOperationResult {
	d.logger.Warn(fmt.Sprintf("could not delete %s: %s", path, msg))
	return domain.DeleteOperationResult{Path: path, ErrorMessage: msg}
}
