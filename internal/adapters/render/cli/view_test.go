package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packfox/chanauth/internal/application"
)

func TestStatusViewListsChannels(t *testing.T) {
	renderer := NewRenderer()

	output := renderer.StatusView([]application.ChannelStatus{
		{Channel: "repo.example.com/main", AuthType: "basic", Identity: "ada", LoggedIn: true},
		{Channel: "repo.example.com/dev", AuthType: "token", LoggedIn: false},
	})

	assert.Contains(t, output, "channels: 2")
	assert.Contains(t, output, "repo.example.com/main")
	assert.Contains(t, output, "auth: basic")
	assert.Contains(t, output, "username: ada")
	assert.Contains(t, output, "credentials stored")
	assert.Contains(t, output, "repo.example.com/dev")
	assert.Contains(t, output, "auth: token")
	assert.Contains(t, output, "not logged in")
}

func TestStatusViewEmpty(t *testing.T) {
	renderer := NewRenderer()

	output := renderer.StatusView(nil)

	assert.Contains(t, output, "channels: 0")
	assert.Contains(t, output, "No channels configured.")
}

func TestStatusViewHidesIdentityForTokenSchemes(t *testing.T) {
	renderer := NewRenderer()

	output := renderer.StatusView([]application.ChannelStatus{
		{Channel: "repo.example.com/dev", AuthType: "oauth2", LoggedIn: true},
	})

	assert.NotContains(t, output, "username:")
}

func TestSuccessAndFailureMessages(t *testing.T) {
	renderer := NewRenderer()

	assert.Contains(t, renderer.Success("Successfully stored credentials"), "Successfully stored credentials")
	assert.Contains(t, renderer.Failure("login failed"), "login failed")
}
