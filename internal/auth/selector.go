package auth

import "github.com/packfox/chanauth/internal/domain"

// Provided records which login flags the invoking user explicitly supplied,
// with or without a value. It replaces argument-parser side channels: flag
// parsing produces it, the selector consumes it.
type Provided struct {
	Username bool
	Password bool
	Token    bool
}

// Select resolves the auth type and manager for a channel.
//
// Precedence: an explicit "auth" setting wins (unknown values fail with
// domain.InvalidSchemeError); otherwise an explicitly provided username or
// password selects basic, an explicitly provided token selects token, and
// basic is the default.
func (r *Registry) Select(settings domain.ChannelSettings, provided Provided) (string, Manager, error) {
	if authType, ok := settings.Get(domain.SettingAuth); ok {
		manager, err := r.Manager(authType)
		if err != nil {
			return "", nil, err
		}
		return authType, manager, nil
	}

	switch {
	case provided.Username || provided.Password:
		return BasicAuthName, r.managers[BasicAuthName], nil
	case provided.Token:
		return TokenAuthName, r.managers[TokenAuthName], nil
	default:
		return BasicAuthName, r.managers[BasicAuthName], nil
	}
}
