// Package prompt asks the rider for confirmation or a choice when a command
// is run from a terminal without the arguments it needs.
package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when stdin is not a terminal.
var ErrNotInteractive = errors.New("not running in a terminal")

// Interactive reports whether stdin and stdout are both terminals.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// Choice is one selectable item.
type Choice struct {
	ID      string
	Label   string
	Details string
}

// Prompter reads answers from In and draws on Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Terminal prompts on stdin and stdout, or fails when they are not a tty.
func Terminal() (*Prompter, error) {
	if !Interactive() {
		return nil, ErrNotInteractive
	}
	return &Prompter{In: os.Stdin, Out: os.Stdout}, nil
}

// Confirm asks a yes/no question; anything but yes is false.
func (p *Prompter) Confirm(label string) (bool, error) {
	q := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     io.NopCloser(p.In),
		Stdout:    nopCloser{p.Out},
	}
	if _, err := q.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Pick lets the rider choose one of choices and returns its ID.
func (p *Prompter) Pick(label string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("nothing to choose from")
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | bold }} {{ .Details | green }}",
		Inactive: "   {{ .Label }} {{ .Details | cyan }}",
		Selected: "{{ .Label | bold }}",
	}
	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(choices[index].Label), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}
	sel := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     choices,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(p.In),
		Stdout:    nopCloser{p.Out},
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	return choices[i].ID, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
