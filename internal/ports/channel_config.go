package ports

import (
	"context"

	"github.com/packfox/chanauth/internal/domain"
)

// ChannelConfigStore reads and writes the per-channel settings blocks of the
// user's channel configuration file.
//
// Read returns domain.ErrChannelNotConfigured (wrapped) when no block matches
// the canonical channel name. Update upserts the auth scheme and identity for
// one channel in memory; Save commits the change atomically, leaving every
// untouched block of the file as it was. Update fails rather than creating a
// missing configuration file.
type ChannelConfigStore interface {
	Read(ctx context.Context, channelName string) (domain.ChannelSettings, error)
	List(ctx context.Context) ([]domain.ChannelSettings, error)
	Update(ctx context.Context, channelName, authType, username string) error
	Save(ctx context.Context) error
}
