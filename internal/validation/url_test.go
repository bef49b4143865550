package validation

import (
	"net"
	"strings"
	"testing"
)

func TestNewSourceURLValidator(t *testing.T) {
	v := NewSourceURLValidator()
	if v.AllowLocalhost || v.AllowPrivateIPs {
		t.Error("strict validator should reject local and private hosts")
	}
	if v.MaxLength != 2048 {
		t.Errorf("MaxLength = %d, want 2048", v.MaxLength)
	}

	p := NewPermissiveSourceURLValidator()
	if !p.AllowLocalhost || !p.AllowPrivateIPs {
		t.Error("permissive validator should allow local and private hosts")
	}
}

func TestValidateAndNormalize(t *testing.T) {
	tests := []struct {
		name        string
		validator   *SourceURLValidator
		input       string
		expected    string
		shouldError bool
		errorMsg    string
	}{
		{name: "empty", validator: NewSourceURLValidator(), input: "  ", shouldError: true, errorMsg: "cannot be empty"},
		{name: "https document", validator: NewSourceURLValidator(), input: "https://quotes.dev/quotes.json", expected: "https://quotes.dev/quotes.json"},
		{name: "surrounding whitespace", validator: NewSourceURLValidator(), input: "  https://quotes.dev/quotes.json\n", expected: "https://quotes.dev/quotes.json"},
		{name: "fragment dropped", validator: NewSourceURLValidator(), input: "https://quotes.dev/quotes.json#top", expected: "https://quotes.dev/quotes.json"},
		{name: "missing scheme", validator: NewSourceURLValidator(), input: "quotes.dev/quotes.json", shouldError: true, errorMsg: "http or https"},
		{name: "ftp scheme", validator: NewSourceURLValidator(), input: "ftp://quotes.dev/quotes.json", shouldError: true, errorMsg: "http or https"},
		{name: "query string", validator: NewSourceURLValidator(), input: "https://quotes.dev/quotes.json?v=1", shouldError: true, errorMsg: "query"},
		{name: "html characters", validator: NewSourceURLValidator(), input: "https://quotes.dev/<script>", shouldError: true, errorMsg: "invalid characters"},
		{name: "traversal", validator: NewSourceURLValidator(), input: "https://quotes.dev/../etc/passwd", shouldError: true, errorMsg: "traversal"},
		{name: "localhost strict", validator: NewSourceURLValidator(), input: "http://localhost:3000/quotes.json", shouldError: true, errorMsg: "localhost"},
		{name: "loopback strict", validator: NewSourceURLValidator(), input: "http://127.0.0.1:3000/quotes.json", shouldError: true, errorMsg: "localhost"},
		{name: "private strict", validator: NewSourceURLValidator(), input: "http://192.168.1.10/quotes.json", shouldError: true, errorMsg: "private"},
		{name: "localhost permissive", validator: NewPermissiveSourceURLValidator(), input: "http://localhost:3000/quotes.json", expected: "http://localhost:3000/quotes.json"},
		{name: "private permissive", validator: NewPermissiveSourceURLValidator(), input: "http://10.0.0.5/quotes.json", expected: "http://10.0.0.5/quotes.json"},
		{name: "unroutable", validator: NewPermissiveSourceURLValidator(), input: "http://0.0.0.0/quotes.json", shouldError: true, errorMsg: "unroutable"},
		{name: "too long", validator: NewSourceURLValidator(), input: "https://quotes.dev/" + strings.Repeat("a", 2048), shouldError: true, errorMsg: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.validator.ValidateAndNormalize(tt.input)
			if tt.shouldError {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil (result %q)", tt.errorMsg, got)
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errorMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsLocalhost(t *testing.T) {
	for host, want := range map[string]bool{
		"localhost":     true,
		"LOCALHOST":     true,
		"app.localhost": true,
		"127.0.0.1":     true,
		"127.0.0.2":     true,
		"::1":           true,
		"quotes.dev":    false,
		"10.0.0.1":      false,
	} {
		if got := isLocalhost(host); got != want {
			t.Errorf("isLocalhost(%q) = %v, want %v", host, got, want)
		}
	}
}

func TestIsPrivateIP(t *testing.T) {
	for addr, want := range map[string]bool{
		"10.1.2.3":    true,
		"172.16.0.1":  true,
		"192.168.0.1": true,
		"169.254.1.1": true,
		"127.0.0.1":   true,
		"fd00::1":     true,
		"fe80::1":     true,
		"8.8.8.8":     false,
		"2001:db8::1": false,
	} {
		if got := isPrivateIP(net.ParseIP(addr)); got != want {
			t.Errorf("isPrivateIP(%q) = %v, want %v", addr, got, want)
		}
	}
}
