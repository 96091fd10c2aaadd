package ports

import "context"

// Prompter is the interactive console capability injected into the auth
// managers. Non-interactive deployments supply an implementation that fails
// fast instead of blocking on console input.
type Prompter interface {
	// Input reads an echoed line, e.g. a username.
	Input(ctx context.Context, label string) (string, error)
	// Secret reads a line with terminal echo disabled.
	Secret(ctx context.Context, label string) (string, error)
	// Token displays the login URL and blocks for the token the user pastes
	// back after completing the login in a browser.
	Token(ctx context.Context, loginURL string) (string, error)
}
