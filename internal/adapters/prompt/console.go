// Package prompt implements interactive credential prompts on the terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/packfox/chanauth/internal/ports"
)

type Console struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

var _ ports.Prompter = (*Console)(nil)

func NewConsole(in *os.File, out io.Writer) *Console {
	return &Console{in: in, reader: bufio.NewReader(in), out: out}
}

func NewStdConsole() *Console {
	return NewConsole(os.Stdin, os.Stderr)
}

func (c *Console) Input(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, label)

	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Secret reads without echo when stdin is a terminal. Piped input falls back
// to a plain line read.
func (c *Console) Secret(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !term.IsTerminal(int(c.in.Fd())) {
		return c.Input(ctx, label)
	}

	fmt.Fprint(c.out, label)

	secret, err := term.ReadPassword(int(c.in.Fd()))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	return string(secret), nil
}

func (c *Console) Token(ctx context.Context, loginURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(c.out, "Follow link to login: %s\n", loginURL)

	return c.Secret(ctx, "Copy and paste login token here: ")
}
