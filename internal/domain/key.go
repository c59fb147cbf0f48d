package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractDomain derives the host:port aggregation key for rawURL.
// An explicit port (or any colon in the host, e.g. IPv6) is kept verbatim;
// otherwise http gets :80, https gets :443 and other schemes keep the bare host.
func ExtractDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	host := u.Host
	if strings.Contains(host, ":") {
		return host, nil
	}
	switch u.Scheme {
	case "http":
		return host + ":80", nil
	case "https":
		return host + ":443", nil
	default:
		return host, nil
	}
}
