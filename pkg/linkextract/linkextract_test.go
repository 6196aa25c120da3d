package linkextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_FiltersNonHTTPAndAnchors(t *testing.T) {
	doc := `
		<a href="#top">top</a>
		<a href="mailto:x@example.com">mail</a>
		<a href="javascript:void(0)">js</a>
		<a href="tel:+15551234">tel</a>
		<a href="https://example.com/real">real</a>
	`
	links, err := ExtractLinks(doc, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/real"}, links)
}

func TestExtractLinks_RelativeResolution(t *testing.T) {
	doc := `<a href="/about">about</a><a href="contact">contact</a>`
	links, err := ExtractLinks(doc, "https://example.com/home/")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/about", links[0])
	assert.Equal(t, "https://example.com/home/contact", links[1])
}

func TestExtractLinks_Idempotent(t *testing.T) {
	doc := `<a href="/a">a</a><a href="/b">b</a>`
	first, err := ExtractLinks(doc, "https://example.com")
	require.NoError(t, err)
	second, err := ExtractLinks(doc, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilterSameDomain_ExactHostOnly(t *testing.T) {
	links := []string{
		"https://example.com/a",
		"https://other.com/b",
		"https://www.example.com/c",
	}
	kept := FilterSameDomain(links, "example.com")
	assert.Equal(t, []string{"https://example.com/a"}, kept)
}

func TestPickRandomLinks_ExcludesVisited(t *testing.T) {
	links := []string{"a", "b", "c"}
	visited := map[string]bool{"a": true, "b": true}
	got := PickRandomLinks(links, 5, visited)
	assert.Equal(t, []string{"c"}, got)
}

func TestPickRandomLinks_NeverReturnsVisitedOrDuplicates(t *testing.T) {
	links := []string{"a", "b", "c", "d", "e"}
	visited := map[string]bool{"a": true}
	for i := 0; i < 20; i++ {
		got := PickRandomLinks(links, 3, visited)
		assert.LessOrEqual(t, len(got), 3)
		seen := map[string]bool{}
		for _, link := range got {
			assert.False(t, visited[link])
			assert.False(t, seen[link], "duplicate in result")
			seen[link] = true
		}
	}
}

func TestPickRandomLinks_EmptyWhenAllVisited(t *testing.T) {
	links := []string{"a", "b"}
	visited := map[string]bool{"a": true, "b": true}
	got := PickRandomLinks(links, 5, visited)
	assert.Empty(t, got)
}
