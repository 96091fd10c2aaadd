package domain

import "strings"

// Channel identifies a package source by its canonical name.
type Channel struct {
	canonicalName string
}

// NewChannel builds a Channel from a user-supplied channel name or URL.
// The canonical name strips the URL scheme and any trailing slash and
// lowercases the result, so "https://Pkgs.Example.com/private/" and
// "pkgs.example.com/private" address the same channel.
func NewChannel(raw string) Channel {
	name := strings.TrimSpace(raw)

	if idx := strings.Index(name, "://"); idx != -1 {
		name = name[idx+len("://"):]
	}
	name = strings.TrimSuffix(name, "/")
	name = strings.ToLower(name)

	return Channel{canonicalName: name}
}

func (c Channel) CanonicalName() string {
	return c.canonicalName
}

func (c Channel) String() string {
	return c.canonicalName
}
