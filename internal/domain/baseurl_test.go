package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL_AddsTrailingSlash(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com/"},
		{"https://example.com/subfolder", "https://example.com/subfolder/"},
		{"https://a.com/docs/v2", "https://a.com/docs/v2/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveBaseURL(tt.input))
		})
	}
}

func TestResolveBaseURL_KeepsTrailingSlash(t *testing.T) {
	assert.Equal(t, "https://example.com/", ResolveBaseURL("https://example.com/"))
	assert.Equal(t, "https://example.com/subfolder/", ResolveBaseURL("https://example.com/subfolder/"))
}

func TestResolveBaseURL_DropsHTMLDocument(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/index.html", "https://example.com/"},
		{"https://example.com/subfolder/page.html", "https://example.com/subfolder/"},
		{"https://example.com/deep/nested/file.html", "https://example.com/deep/nested/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveBaseURL(tt.input))
		})
	}
}

func TestResolveBaseURL_StripsQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com?param=value", "https://example.com/"},
		{"https://example.com/index.html?param=value", "https://example.com/"},
		{"https://example.com/subfolder?x=y&z=b", "https://example.com/subfolder/"},
		{"https://example.com/page.html?id=123&sort=date", "https://example.com/"},
		{"https://example.com/blog/post.html?comments=true", "https://example.com/blog/"},
		{"https://a.com/x/page.html?id=1", "https://a.com/x/"},
		{"https://example.com/file.html?", "https://example.com/"},
		{"https://a.com/?", "https://a.com/"},
		{"https://a.com/page.html?next=/other/path", "https://a.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ResolveBaseURL(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.True(t, strings.HasSuffix(result, "/"))
		})
	}
}

func TestResolveBaseURL_StripsFragment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/docs/page.html#intro", "https://example.com/docs/"},
		{"https://example.com/app#settings", "https://example.com/app/"},
		{"https://a.com/app/#/route", "https://a.com/app/"},
		{"https://a.com/#", "https://a.com/"},
		{"https://a.com/list?page=2#top", "https://a.com/list/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveBaseURL(tt.input))
		})
	}
}
