package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstringNormalizer_RelativeToBase(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		url      string
		expected string
	}{
		{"root file", "https://example.com/", "https://example.com/styles.css", "styles.css"},
		{"nested file", "https://example.com/", "https://example.com/js/script.js", "js/script.js"},
		{"image", "https://example.com/", "https://example.com/images/logo.png", "images/logo.png"},
		{"subdirectory base", "https://example.com/app/", "https://example.com/app/main.css", "main.css"},
		{"deep subdirectory", "https://example.com/app/", "https://example.com/app/components/button.js", "components/button.js"},
		{"keeps query", "https://example.com/app/", "https://example.com/app/styles/main.css?v=123", "styles/main.css?v=123"},
		{"blog post", "https://example.com/blog/", "https://example.com/blog/posts/article.html", "posts/article.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubstringNormalizer{}.Normalize(tt.base, tt.url))
		})
	}
}

func TestSubstringNormalizer_BaseMapsToIndex(t *testing.T) {
	n := SubstringNormalizer{}

	assert.Equal(t, IndexDocument, n.Normalize("https://example.com/", "https://example.com/"))
	assert.Equal(t, IndexDocument, n.Normalize("https://example.com/", "https://example.com"))
	assert.Equal(t, IndexDocument, n.Normalize("https://example.com/app/", "https://example.com/app/"))
}

func TestSubstringNormalizer_CrossOriginUnchanged(t *testing.T) {
	tests := []struct {
		base string
		url  string
	}{
		{"https://example.com/", "https://other-domain.com/file.css"},
		{"https://example.com/", "https://cdn.example.org/script.js"},
		{"https://example.com/blog/", "https://example.com/blog"},
		{"https://example.com/blog/", "https://example.com/"},
		{"https://mysite.com/", "https://cdn.external.com/library.js"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.url, SubstringNormalizer{}.Normalize(tt.base, tt.url))
		})
	}
}

func TestSubstringNormalizer_MatchesBaseAnywhere(t *testing.T) {
	// The base recurs inside a redirect parameter of another host
	result := SubstringNormalizer{}.Normalize(
		"https://example.com/",
		"https://tracker.net/r?u=https://example.com/page.js",
	)

	assert.Equal(t, "page.js", result)
}

func TestSubstringNormalizer_EmptyBase(t *testing.T) {
	assert.Equal(t, "https://example.com/a.js", SubstringNormalizer{}.Normalize("", "https://example.com/a.js"))
}
