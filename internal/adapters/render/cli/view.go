// Package cli renders command output with terminal styling.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/packfox/chanauth/internal/application"
)

type Renderer struct {
	styles styles
}

func NewRenderer() *Renderer {
	return &Renderer{styles: newStyles()}
}

func (r *Renderer) Success(message string) string {
	return r.styles.success.Render(message)
}

func (r *Renderer) Failure(message string) string {
	return r.styles.failure.Render(message)
}

// StatusView lists every configured channel with its auth scheme, recorded
// identity, and whether a credential is currently stored.
func (r *Renderer) StatusView(statuses []application.ChannelStatus) string {
	lines := []string{
		r.styles.title.Render("Channel Authentication"),
		r.styles.header.Render(fmt.Sprintf("channels: %d", len(statuses))),
	}

	if len(statuses) == 0 {
		lines = append(lines, r.styles.empty.Render("No channels configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, r.styles.section.Render(r.renderChannel(status)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) renderChannel(status application.ChannelStatus) string {
	parts := []string{
		r.styles.channel.Render(status.Channel),
		r.styles.detail.Render(fmt.Sprintf("auth: %s", status.AuthType)),
	}

	if status.Identity != "" {
		parts = append(parts, r.styles.detail.Render(fmt.Sprintf("username: %s", status.Identity)))
	}

	if status.LoggedIn {
		parts = append(parts, r.styles.loggedIn.Render("credentials stored"))
	} else {
		parts = append(parts, r.styles.loggedOut.Render("not logged in"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
