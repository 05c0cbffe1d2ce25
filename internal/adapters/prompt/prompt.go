// Package prompt asks the user to confirm destructive operations.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter. It runs a bubbletea prompt when the
// input is a terminal and reads a single line otherwise.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	teaOptions  []tea.ProgramOption
}

// New creates a Prompter bound to the process stdin and stderr.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stderr, isTerminal(os.Stdin))
}

// NewWithIO creates a Prompter reading from in and writing to out.
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{in: in, out: out, interactive: interactive}
}

// WithTeaOptions adds bubbletea program options used by the interactive prompt.
func (p *Prompter) WithTeaOptions(opts ...tea.ProgramOption) *Prompter {
	p.teaOptions = append(p.teaOptions, opts...)
	return p
}

// Confirm asks question and reports whether the user answered yes.
// Anything other than an explicit yes declines.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if p.interactive {
		return p.confirmInteractive(ctx, question)
	}
	return p.confirmLine(question)
}

func (p *Prompter) confirmInteractive(ctx context.Context, question string) (bool, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	}, p.teaOptions...)

	final, err := tea.NewProgram(newConfirmModel(question), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, zerr.Wrap(domain.ErrPromptFailed, "unexpected prompt model")
	}
	return m.confirmed, nil
}

func (p *Prompter) confirmLine(question string) (bool, error) {
	if _, err := io.WriteString(p.out, question+" [y/N] "); err != nil {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}
	return isYes(line), nil
}

func isYes(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
