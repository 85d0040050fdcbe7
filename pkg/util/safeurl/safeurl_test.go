package safeurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	hosts := []string{"example.com", "www.example.com:8443"}

	tests := []struct {
		name   string
		target string
		https  bool
		want   bool
	}{
		{"relative path", "/inbox/notifications/", false, true},
		{"relative with query", "/inbox/?page=2", false, true},
		{"surrounding space", "  /inbox/  ", false, true},
		{"allowed host", "https://example.com/x", false, true},
		{"allowed host with port", "https://www.example.com:8443/x", false, true},
		{"allowed host over http", "http://example.com/x", false, true},
		{"http when https required", "http://example.com/x", true, false},
		{"https when https required", "https://example.com/x", true, true},
		{"empty", "", false, false},
		{"blank", "   ", false, false},
		{"foreign host", "https://evil.com/x", false, false},
		{"port not listed", "https://example.com:9000/", false, false},
		{"userinfo", "https://user@example.com/", false, false},
		{"scheme relative", "//evil.com/x", false, false},
		{"scheme relative allowed", "//example.com/x", false, true},
		{"triple slash", "///evil.com", false, false},
		{"scheme without host", "http:///evil.com", false, false},
		{"javascript", "javascript:alert(1)", false, false},
		{"ftp", "ftp://example.com/", false, false},
		{"backslashes", `\\evil.com`, false, false},
		{"mixed slashes", `/\evil.com`, false, false},
		{"backslash userinfo", `https://evil.com\@example.com`, false, false},
		{"leading control char", "\x08//evil.com", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.target, hosts, tt.https))
		})
	}
}

func TestAllowedWithoutHosts(t *testing.T) {
	assert.True(t, Allowed("/local", nil, false))
	assert.False(t, Allowed("https://example.com/", nil, false))
}
