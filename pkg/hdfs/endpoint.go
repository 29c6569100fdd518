package hdfs

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// SchemeHdfs denotes a distributed filesystem endpoint.
	SchemeHdfs = "hdfs"

	// SchemeFile denotes the local filesystem exposed through the same
	// native interface.
	SchemeFile = "file"
)

// Endpoint describes a connectable filesystem endpoint. The zero Host with
// [SchemeFile] selects the local filesystem.
type Endpoint struct {
	Scheme string
	Host   string
	Port   uint16
	User   string
}

// Local returns the [Endpoint] of the local filesystem.
func Local() Endpoint {
	return Endpoint{Scheme: SchemeFile}
}

// Key returns the caching key identifying the [Endpoint] within a [Registry].
func (ep Endpoint) Key() string {
	if ep.Scheme == SchemeFile {
		return SchemeFile + "://"
	}

	if ep.User != "" {
		return fmt.Sprintf("%s://%s@%s:%d", ep.Scheme, ep.User, ep.Host, ep.Port)
	}

	return fmt.Sprintf("%s://%s:%d", ep.Scheme, ep.Host, ep.Port)
}

// ParseURI splits a URI into its filesystem [Endpoint] and the path within
// that filesystem's namespace.
//
// Supported forms are "hdfs://host:port/path", "file:///path" and a bare
// "/path" (which resolves against the given fallback endpoint).
func ParseURI(uri string, fallback Endpoint) (Endpoint, string, error) {
	if uri == "" {
		return Endpoint{}, "", fmt.Errorf("(hdfs) empty uri: %w", ErrInvalidEndpoint)
	}

	if !strings.Contains(uri, "://") {
		return fallback, uri, nil
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return Endpoint{}, "", fmt.Errorf("(hdfs) %q: %w", uri, ErrInvalidEndpoint)
	}

	switch parsed.Scheme {
	case SchemeFile:
		if parsed.Host != "" {
			return Endpoint{}, "", fmt.Errorf("(hdfs) %q: file uri must not carry a host: %w", uri, ErrInvalidEndpoint)
		}

		return Local(), parsed.Path, nil

	case SchemeHdfs:
		ep := Endpoint{Scheme: SchemeHdfs, Host: parsed.Hostname()}

		if portStr := parsed.Port(); portStr != "" {
			port, err := strconv.ParseUint(portStr, 10, 16)
			if err != nil {
				return Endpoint{}, "", fmt.Errorf("(hdfs) %q: %w", uri, ErrInvalidEndpoint)
			}
			ep.Port = uint16(port)
		}

		if ep.Host == "" {
			return Endpoint{}, "", fmt.Errorf("(hdfs) %q: missing namenode host: %w", uri, ErrInvalidEndpoint)
		}

		if parsed.User != nil {
			ep.User = parsed.User.Username()
		}

		return ep, parsed.Path, nil

	default:
		return Endpoint{}, "", fmt.Errorf("(hdfs) %q: unsupported scheme %q: %w", uri, parsed.Scheme, ErrInvalidEndpoint)
	}
}
