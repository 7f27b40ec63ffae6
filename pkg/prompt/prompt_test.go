package prompt

import (
	"io"
	"strings"
	"testing"
)

func TestPickNothing(t *testing.T) {
	p := &Prompter{In: strings.NewReader(""), Out: io.Discard}
	if _, err := p.Pick("Task", nil); err == nil {
		t.Fatalf("expected an error with no choices")
	}
}
