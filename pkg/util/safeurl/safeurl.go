// Package safeurl decides whether a user-supplied redirect target may be
// followed.
package safeurl

import (
	"net/url"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Allowed reports whether target is a relative URL, or an absolute one whose
// host is listed in allowedHosts and whose scheme is http or https (only
// https when requireHTTPS is set). Hosts are compared including any port or
// userinfo, exactly as written.
//
// Browsers treat a backslash like a slash in many positions, so the target
// must pass both as written and with every backslash replaced.
func Allowed(target string, allowedHosts []string, requireHTTPS bool) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}
	return allowed(target, allowedHosts, requireHTTPS) &&
		allowed(strings.ReplaceAll(target, `\`, "/"), allowedHosts, requireHTTPS)
}

func allowed(target string, allowedHosts []string, requireHTTPS bool) bool {
	// Browsers read three or more leading slashes as scheme-relative.
	if strings.HasPrefix(target, "///") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(target)
	if unicode.IsControl(r) {
		return false
	}

	u, err := url.Parse(target)
	if err != nil {
		return false
	}

	netloc := u.Host
	if u.User != nil {
		netloc = u.User.String() + "@" + netloc
	}
	scheme := strings.ToLower(u.Scheme)

	// A scheme without a host, e.g. "http:///evil.com" or "javascript:...".
	if netloc == "" && scheme != "" {
		return false
	}
	if scheme == "" && netloc != "" {
		scheme = "http"
	}

	if netloc != "" && !slices.Contains(allowedHosts, netloc) {
		return false
	}
	switch scheme {
	case "", "https":
		return true
	case "http":
		return !requireHTTPS
	}
	return false
}
