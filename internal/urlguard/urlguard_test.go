package urlguard

import (
	"errors"
	"net"
	"testing"
)

func TestValidate_SchemeGating(t *testing.T) {
	cases := []string{
		"ftp://example.com/file",
		"file:///etc/hosts",
		"gopher://example.com",
		"example.com/no-scheme",
		"://broken",
	}
	for _, raw := range cases {
		if _, err := Validate(raw); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("Validate(%q) = %v, want ErrInvalidURL", raw, err)
		}
	}
}

func TestValidate_AcceptsHTTPAndHTTPS(t *testing.T) {
	for _, raw := range []string{"http://example.com/a", "https://example.com/a", "HTTPS://EXAMPLE.COM/a"} {
		u, err := Validate(raw)
		if err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", raw, err)
		}
		if u == nil {
			t.Fatalf("Validate(%q) returned nil URL", raw)
		}
	}
}

func TestValidate_LocalhostVariants(t *testing.T) {
	cases := []string{
		"http://localhost/x",
		"http://LOCALHOST:8080/x",
		"http://app.localhost/x",
	}
	for _, raw := range cases {
		if _, err := Validate(raw); !errors.Is(err, ErrDisallowedHost) {
			t.Fatalf("Validate(%q) = %v, want ErrDisallowedHost", raw, err)
		}
	}
}

func TestValidate_PrivateLiterals(t *testing.T) {
	blocked := []string{
		"http://127.0.0.1/x",
		"http://127.255.255.254/x",
		"http://10.0.0.1/x",
		"http://10.255.255.255/x",
		"http://192.168.0.1/x",
		"http://192.168.255.255/x",
		"http://172.16.0.1/x",
		"http://172.31.255.255/x",
		"http://169.254.169.254/latest/meta-data",
		"http://[::1]/x",
		"http://[fc00::1]/x",
		"http://[fd12:3456::1]/x",
		"http://[fe80::1]/x",
		"http://[::ffff:127.0.0.1]/x",
		"http://[::ffff:10.0.0.1]/x",
	}
	for _, raw := range blocked {
		if _, err := Validate(raw); !errors.Is(err, ErrDisallowedHost) {
			t.Fatalf("Validate(%q) = %v, want ErrDisallowedHost", raw, err)
		}
	}

	allowed := []string{
		"http://8.8.8.8/x",
		"http://1.1.1.1/x",
		"http://172.32.0.1/x",
		"http://11.0.0.1/x",
		"https://[2606:4700::1111]/x",
	}
	for _, raw := range allowed {
		if _, err := Validate(raw); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", raw, err)
		}
	}
}

func TestValidate_HostnamePassesUnresolved(t *testing.T) {
	// A hostname that would resolve to a private address is not resolved
	// here; only literals are classified.
	if _, err := Validate("http://internal.example.com/x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsPrivateIP(t *testing.T) {
	cases := []struct {
		ip      string
		private bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.1.1", true},
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"169.254.0.1", true},
		{"::1", true},
		{"fc00::1", true},
		{"fd00::1", true},
		{"fe80::1", true},
		{"8.8.8.8", false},
		{"2606:4700::1111", false},
		{"172.32.0.1", false},
	}
	for _, c := range cases {
		ip := net.ParseIP(c.ip)
		if ip == nil {
			t.Fatalf("bad test IP %q", c.ip)
		}
		if got := IsPrivateIP(ip); got != c.private {
			t.Fatalf("IsPrivateIP(%s) = %v, want %v", c.ip, got, c.private)
		}
	}
}
