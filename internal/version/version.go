// Package version exposes the build version, overridden at release time via
// -ldflags "-X github.com/packfox/chanauth/internal/version.Version=...".
package version

var Version = "dev"
