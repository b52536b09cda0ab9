// Package url provides URL resolution and internal/external link
// classification for crawling. Classification compares authorities
// (host[:port]), never schemes, paths, or query strings.
package url

import (
	neturl "net/url"
	"strings"
)

// Normalize ensures a target domain carries a scheme, prepending
// https:// when missing.
func Normalize(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + domain
}

// Resolve resolves href against base and returns the absolute URL.
func Resolve(base, href string) (string, error) {
	b, err := neturl.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := neturl.Parse(href)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(ref).String(), nil
}

// Authority returns the host[:port] component of a URL, lowercased.
// Returns an empty string if the URL cannot be parsed.
func Authority(rawURL string) string {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// SameAuthority reports whether two URLs share an authority. The
// comparison is scheme-insensitive: http://a.com/x and https://a.com/y
// are the same authority. Unparseable URLs never match.
func SameAuthority(a, b string) bool {
	aa, ba := Authority(a), Authority(b)
	return aa != "" && aa == ba
}

// Navigable reports whether an anchor href is worth following. Empty
// hrefs, javascript:, mailto:, tel: schemes, and bare fragments are
// excluded from classification and edge emission entirely.
func Navigable(href string) bool {
	h := strings.ToLower(strings.TrimSpace(href))
	if h == "" {
		return false
	}
	if strings.HasPrefix(h, "#") {
		return false
	}
	return !strings.HasPrefix(h, "javascript:") &&
		!strings.HasPrefix(h, "mailto:") &&
		!strings.HasPrefix(h, "tel:")
}
