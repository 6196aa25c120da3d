// Package linkextract parses HTML pages for same-domain navigation links:
// resolving relative hrefs, rejecting non-HTTP(S) schemes, filtering to an
// exact host match, and picking unvisited next hops at random.
package linkextract

import (
	"math/rand/v2"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

// ExtractLinks returns the ordered sequence of absolute URLs found in doc's
// <a href> elements, resolved against base. In-page anchors (href="#...")
// are dropped, as are any resolved URLs whose scheme isn't http/https.
func ExtractLinks(doc, base string) ([]string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, errx.With(ErrParseBaseURL, " %q: %w", base, err)
	}

	var links []string
	tokenizer := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			href, ok := hrefAttr(token)
			if !ok || strings.HasPrefix(href, "#") {
				continue
			}
			resolved, err := baseURL.Parse(href)
			if err != nil {
				continue
			}
			if resolved.Scheme != "http" && resolved.Scheme != "https" {
				continue
			}
			links = append(links, resolved.String())
		}
	}
}

func hrefAttr(token html.Token) (string, bool) {
	for _, attr := range token.Attr {
		if attr.Key == "href" {
			return attr.Val, true
		}
	}
	return "", false
}

// FilterSameDomain keeps only links whose host exactly equals host.
// Subdomains are not unified: "www.x.com" and "x.com" are distinct.
func FilterSameDomain(links []string, host string) []string {
	var kept []string
	for _, link := range links {
		u, err := url.Parse(link)
		if err != nil {
			continue
		}
		if u.Host == host {
			kept = append(kept, link)
		}
	}
	return kept
}

// PickRandomLinks drops any link already in visited, shuffles the
// remainder, and returns up to n of them. It may return fewer than n, or
// none if nothing is unvisited.
func PickRandomLinks(links []string, n int, visited map[string]bool) []string {
	var unvisited []string
	for _, link := range links {
		if !visited[link] {
			unvisited = append(unvisited, link)
		}
	}
	rand.Shuffle(len(unvisited), func(i, j int) {
		unvisited[i], unvisited[j] = unvisited[j], unvisited[i]
	})
	if n > len(unvisited) {
		n = len(unvisited)
	}
	if n == 0 {
		return nil
	}
	return unvisited[:n]
}
