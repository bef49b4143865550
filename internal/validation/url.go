// Package validation checks document locations before a source is opened.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// SourceURLValidator validates the URL of a remote quote document.
type SourceURLValidator struct {
	// AllowLocalhost permits localhost and loopback hosts.
	AllowLocalhost  bool
	// AllowPrivateIPs permits private and link-local addresses.
	AllowPrivateIPs bool
	MaxLength       int
}

// NewSourceURLValidator rejects local and private hosts.
func NewSourceURLValidator() *SourceURLValidator {
	return &SourceURLValidator{
		MaxLength: 2048,
	}
}

// NewPermissiveSourceURLValidator accepts local hosts, which is how the
// document is usually served during development.
func NewPermissiveSourceURLValidator() *SourceURLValidator {
	return &SourceURLValidator{
		AllowLocalhost:  true,
		AllowPrivateIPs: true,
		MaxLength:       2048,
	}
}

// ValidateAndNormalize checks an http(s) URL and returns its normalized form.
// Query strings are rejected since the document is fetched with a bare GET.
func (v *SourceURLValidator) ValidateAndNormalize(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}
	if len(input) > v.MaxLength {
		return "", fmt.Errorf("URL too long (max %d characters)", v.MaxLength)
	}
	if strings.ContainsAny(input, "<>\"'`") {
		return "", fmt.Errorf("URL contains invalid characters")
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("URL must use http or https protocol")
	}
	if parsedURL.Host == "" {
		return "", fmt.Errorf("URL must have a valid hostname")
	}
	if parsedURL.RawQuery != "" || parsedURL.ForceQuery {
		return "", fmt.Errorf("URL must not carry query parameters")
	}
	if strings.Contains(parsedURL.Path, "..") {
		return "", fmt.Errorf("directory traversal patterns not allowed in URL path")
	}
	if err := v.validateHost(parsedURL.Host); err != nil {
		return "", err
	}

	parsedURL.Fragment = ""
	return parsedURL.String(), nil
}

func (v *SourceURLValidator) validateHost(host string) error {
	hostname := host
	if strings.Contains(host, ":") {
		var err error
		hostname, _, err = net.SplitHostPort(host)
		if err != nil {
			return fmt.Errorf("invalid host format: %w", err)
		}
	}

	if !v.AllowLocalhost && isLocalhost(hostname) {
		return fmt.Errorf("localhost URLs are not permitted")
	}
	if !v.AllowPrivateIPs {
		if ip := net.ParseIP(hostname); ip != nil && isPrivateIP(ip) {
			return fmt.Errorf("private IP addresses are not permitted")
		}
	}
	switch hostname {
	case "0.0.0.0", "255.255.255.255", "::":
		return fmt.Errorf("unroutable host %s", hostname)
	}
	return nil
}

func isLocalhost(hostname string) bool {
	hostname = strings.ToLower(hostname)
	if hostname == "localhost" || strings.HasSuffix(hostname, ".localhost") {
		return true
	}
	ip := net.ParseIP(hostname)
	return ip != nil && ip.IsLoopback()
}

func isPrivateIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()
}
