package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
)

// ErrCancelled indicates the user aborted an interactive prompt.
var ErrCancelled = errors.New("cancelled by user")

// Console is the explicit presentation collaborator for CLI commands.
// The interactive implementation prompts through huh forms; the headless
// one answers with the supplied defaults and writes plain lines.
type Console interface {
	// Printf writes a plain line.
	Printf(format string, args ...any)
	// Successf, Warnf, and Errorf write themed lines.
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Confirm asks a yes/no question. Headless mode returns defaultYes.
	Confirm(question string, defaultYes bool) (bool, error)
	// Prompt asks for a line of input. Headless mode returns defaultValue.
	Prompt(label, defaultValue string) (string, error)

	// Spin runs fn while showing an animated spinner with the given title.
	// Headless mode prints the title and runs fn directly.
	Spin(title string, fn func() error) error
}

// console is the concrete Console implementation.
type console struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
}

// NewConsole creates a Console writing to os.Stdout.
func NewConsole(theme *Theme, hm *HeadlessManager) Console {
	return &console{theme: theme, headless: hm, out: os.Stdout}
}

// NewConsoleWithWriter creates a Console with a custom writer (for testing).
func NewConsoleWithWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Console {
	return &console{theme: theme, headless: hm, out: w}
}

func (c *console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.theme.Success.Render(fmt.Sprintf(format, args...)))
}

func (c *console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.out, c.theme.Warning.Render(fmt.Sprintf(format, args...)))
}

func (c *console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, c.theme.Error.Render(fmt.Sprintf(format, args...)))
}

func (c *console) Confirm(question string, defaultYes bool) (bool, error) {
	if c.headless.IsHeadless() {
		return defaultYes, nil
	}

	answer := defaultYes
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Value(&answer),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return answer, nil
}

func (c *console) Prompt(label, defaultValue string) (string, error) {
	if c.headless.IsHeadless() {
		return defaultValue, nil
	}

	value := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(label).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("input prompt: %w", err)
	}
	return value, nil
}

func (c *console) Spin(title string, fn func() error) error {
	if c.headless.IsHeadless() || c.theme.NoColor {
		fmt.Fprintln(c.out, title)
		return fn()
	}
	return runSpinner(c.theme, title, fn)
}
