// Package version exposes the SDK's build identity. The HTTP transport
// advertises it in the User-Agent header.
//
// Version is overridable at build time:
//
//	go build -ldflags "-X github.com/relaypush/relay-go/version.Version=1.2.0"
package version
