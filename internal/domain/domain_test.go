package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannelCanonicalName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain name", raw: "private-chan", want: "private-chan"},
		{name: "https url", raw: "https://pkgs.example.com/private", want: "pkgs.example.com/private"},
		{name: "trailing slash", raw: "https://pkgs.example.com/private/", want: "pkgs.example.com/private"},
		{name: "mixed case", raw: "Pkgs.Example.COM/Private", want: "pkgs.example.com/private"},
		{name: "surrounding whitespace", raw: "  private-chan ", want: "private-chan"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewChannel(tc.raw).CanonicalName())
		})
	}
}

func TestChannelSettingsMergeCLIWins(t *testing.T) {
	t.Parallel()

	persisted := ChannelSettings{
		SettingChannel:  "private-chan",
		SettingAuth:     "basic",
		SettingUsername: "alice",
	}
	overrides := ChannelSettings{
		SettingUsername: "bob",
		SettingPassword: "p1",
	}

	merged := persisted.Merge(overrides)

	assert.Equal(t, "bob", merged[SettingUsername])
	assert.Equal(t, "p1", merged[SettingPassword])
	assert.Equal(t, "basic", merged[SettingAuth])
	assert.Equal(t, "alice", persisted[SettingUsername], "merge must not mutate inputs")
}

func TestChannelSettingsMergeExcludesEmptyValues(t *testing.T) {
	t.Parallel()

	merged := ChannelSettings{SettingUsername: ""}.Merge(ChannelSettings{SettingToken: ""})

	_, ok := merged.Get(SettingUsername)
	assert.False(t, ok)
	_, ok = merged.Get(SettingToken)
	assert.False(t, ok)
	assert.Empty(t, merged)
}

func TestOptionStates(t *testing.T) {
	t.Parallel()

	unset := UnsetOption()
	assert.False(t, unset.Provided())

	requested := RequestedOption()
	assert.True(t, requested.Provided())
	_, ok := requested.Value()
	assert.False(t, ok)

	withValue := ValueOption("alice")
	assert.True(t, withValue.Provided())
	value, ok := withValue.Value()
	require.True(t, ok)
	assert.Equal(t, "alice", value)
}

func TestCredentialNotFoundErrorUnwrapsToSecretNotFound(t *testing.T) {
	t.Parallel()

	err := CredentialNotFoundError{Channel: "private-chan"}
	assert.ErrorIs(t, err, ErrSecretNotFound)
	assert.ErrorContains(t, err, `no credential found for channel "private-chan"`)
}

func TestSecretStoreErrorAppendsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("keychain locked")
	err := SecretStoreError{Op: "remove", Channel: "private-chan", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "keychain locked")
	assert.ErrorContains(t, err, "private-chan")
}
