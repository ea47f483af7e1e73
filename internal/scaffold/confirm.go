package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// PromptConfirmer reads a one-line answer from r after writing the question
// to w. Only "y" or "Y" counts as yes; anything else, including end of
// input, is a no.
type PromptConfirmer struct {
	r *bufio.Reader
	w io.Writer
}

// NewPromptConfirmer returns a PromptConfirmer over r and w.
func NewPromptConfirmer(r io.Reader, w io.Writer) *PromptConfirmer {
	return &PromptConfirmer{r: bufio.NewReader(r), w: w}
}

// Confirm implements Confirmer.
func (p *PromptConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.w, "%s (y/N) ", question)
	answer, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y", nil
}
