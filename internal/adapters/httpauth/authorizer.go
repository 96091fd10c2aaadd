// Package httpauth injects stored channel credentials into outgoing HTTP
// requests.
package httpauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/packfox/chanauth/internal/auth"
	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

// Authorizer applies one channel's credential to requests. The secret is
// resolved once at construction; a missing credential fails construction
// instead of surfacing per request.
type Authorizer struct {
	authType string
	identity string
	secret   string
}

func NewAuthorizer(ctx context.Context, registry *auth.Registry, config ports.ChannelConfigStore, channel domain.Channel) (*Authorizer, error) {
	settings, err := config.Read(ctx, channel.CanonicalName())
	if err != nil {
		return nil, err
	}

	authType, ok := settings.Get(domain.SettingAuth)
	if !ok {
		return nil, fmt.Errorf("channel %q records no auth scheme: %w", channel.CanonicalName(), domain.ErrChannelNotConfigured)
	}

	manager, err := registry.Manager(authType)
	if err != nil {
		return nil, err
	}

	identity, secret, err := manager.GetSecret(ctx, channel.CanonicalName(), settings)
	if err != nil {
		return nil, err
	}

	return &Authorizer{authType: authType, identity: identity, secret: secret}, nil
}

func (a *Authorizer) AuthType() string {
	return a.authType
}

// Apply sets the Authorization header on req in place.
func (a *Authorizer) Apply(req *http.Request) {
	switch a.authType {
	case auth.BasicAuthName:
		req.SetBasicAuth(a.identity, a.secret)
	default:
		req.Header.Set("Authorization", "Bearer "+a.secret)
	}
}

// Transport decorates an http.RoundTripper with an Authorizer. The incoming
// request is cloned before the header is added, per the RoundTripper
// contract.
type Transport struct {
	Base       http.RoundTripper
	Authorizer *Authorizer
}

var _ http.RoundTripper = (*Transport)(nil)

func NewTransport(base http.RoundTripper, authorizer *Authorizer) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Authorizer: authorizer}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	t.Authorizer.Apply(cloned)

	return t.Base.RoundTrip(cloned)
}
