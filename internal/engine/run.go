package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Run plays the session over a line-oriented reader and writer until the
// game ends, input runs out or ctx is cancelled. End of input counts as
// quit.
func (g *Game) Run(ctx context.Context, r io.Reader, w io.Writer) (Status, error) {
	_, _ = fmt.Fprintln(w, g.Welcome())

	scanner := bufio.NewScanner(r)
	for !g.status.Terminal() {
		if err := ctx.Err(); err != nil {
			return g.status, err
		}

		_, _ = fmt.Fprint(w, "\n> ")
		line := "quit"
		if scanner.Scan() {
			line = strings.TrimSpace(scanner.Text())
		} else if err := scanner.Err(); err != nil {
			return g.status, fmt.Errorf("reading input: %w", err)
		}

		res := g.Execute(line)
		_, _ = fmt.Fprint(w, res.Output)
	}

	_, _ = fmt.Fprintln(w, Farewell)
	return g.status, nil
}
