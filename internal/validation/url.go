package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// MaxURLLength bounds the normalized URL in bytes. Longer URLs do not fit
// the unique index on urls.url.
const MaxURLLength = 2048

// urlPattern accepts an optional http(s) scheme, a dotted hostname ending in a
// label of two or more letters or a dotted quad (octets are not range checked),
// an optional port, path segments, query string and fragment.
var urlPattern = regexp.MustCompile(`(?i)^(https?://)?` +
	`((([a-z\d]([a-z\d-]*[a-z\d])*)\.?)+[a-z]{2,}|` +
	`((\d{1,3}\.){3}\d{1,3}))` +
	`(:\d+)?(/[-a-z\d%_.~+]*)*` +
	`(\?[;&amp;a-z\d%_.~+=-]*)?` +
	`(#[-a-z\d_]*)?$`)

// IsValidURL reports whether candidate looks like an HTTP(S) URL.
func IsValidURL(candidate string) bool {
	return urlPattern.MatchString(candidate)
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// NormalizeURL returns the canonical absolute form of raw: lower-case scheme
// and host, no default port, dot segments removed, and "/" for an empty path.
func NormalizeURL(raw string) (string, error) {
	if len(raw) > MaxURLLength {
		return "", fmt.Errorf("url longer than %d bytes", MaxURLLength)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url format: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if _, ok := defaultPorts[scheme]; !ok {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("missing host")
	}

	host := strings.ToLower(u.Hostname())
	if err := checkIPv4(host); err != nil {
		return "", err
	}
	if port := u.Port(); port != "" && port != defaultPorts[scheme] {
		host = net.JoinHostPort(host, port)
	}

	u.Scheme = scheme
	u.Host = host
	// Resolving against an empty reference removes "." and ".." segments.
	u = u.ResolveReference(&url.URL{})
	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	normalized := u.String()
	if len(normalized) > MaxURLLength {
		return "", fmt.Errorf("url longer than %d bytes", MaxURLLength)
	}
	return normalized, nil
}

// checkIPv4 rejects dotted-quad hosts with an octet above 255.
func checkIPv4(host string) error {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return nil
	}
	for _, part := range parts {
		if part == "" || strings.Trim(part, "0123456789") != "" {
			return nil
		}
	}
	for _, part := range parts {
		if n, err := strconv.Atoi(part); err != nil || n > 255 {
			return fmt.Errorf("invalid ipv4 address %q", host)
		}
	}
	return nil
}
