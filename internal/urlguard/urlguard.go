// Package urlguard validates candidate URLs before any network I/O is
// performed. It blocks non-HTTP schemes and hosts that point at loopback,
// link-local, private, or otherwise non-public addresses (SSRF prevention).
//
// Only literal IP hosts are classified here. A hostname that resolves to a
// private address at connect time is not re-checked post-resolution; callers
// that need resolve-then-validate pinning must add it at the dial layer.
package urlguard

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	// ErrInvalidURL marks URLs that are malformed or use a scheme other
	// than http/https.
	ErrInvalidURL = errors.New("invalid url")
	// ErrDisallowedHost marks URLs whose host is localhost or a literal
	// private/reserved address.
	ErrDisallowedHost = errors.New("disallowed host")
)

// v6unique is the IPv6 unique-local range fc00::/7, parsed once at package
// initialization.
var v6unique *net.IPNet

func init() {
	var err error
	_, v6unique, err = net.ParseCIDR("fc00::/7")
	if err != nil {
		panic("invalid IPv6 unique local CIDR: " + err.Error())
	}
}

// Validate parses rawURL and authorizes it for fetching. It returns the
// parsed URL on success. No network call is made; validation is purely
// syntactic plus literal-IP classification.
func Validate(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return nil, fmt.Errorf("%w: %s", ErrDisallowedHost, host)
	}

	// Literal IPs are classified synchronously. Non-literal hostnames pass
	// through unresolved; see the package comment for the residual risk.
	if ip := net.ParseIP(host); ip != nil {
		if IsPrivateIP(ip) {
			return nil, fmt.Errorf("%w: %s", ErrDisallowedHost, host)
		}
	}

	return parsed, nil
}

// IsPrivateIP reports whether ip is in a loopback, link-local, private, or
// unique-local range. IPv4-mapped IPv6 addresses are unwrapped and re-checked.
func IsPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}

	// IPv4-mapped IPv6 (::ffff:x.x.x.x) hides the v4 range from the checks
	// above in some representations, so convert and re-check.
	if v4 := ip.To4(); v4 != nil {
		if v4.IsLoopback() || v4.IsPrivate() || v4.IsLinkLocalUnicast() {
			return true
		}
		return false
	}

	return v6unique.Contains(ip)
}
