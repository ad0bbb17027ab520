package news

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	extractTimeout = 30 * time.Second
	maxWords       = 5000
)

// browserHeaders sets browser-like request headers so sites that check
// Accept or User-Agent don't reject the request with 406.
func browserHeaders(r *http.Request) {
	r.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	r.Header.Set("User-Agent", "Mozilla/5.0 (compatible; news-blog/1.0)")
}

// ExtractContent fetches the page at the given URL and returns its main
// readable text, truncated to 5000 words. Used to populate the article
// detail view for cached items that carry only a description.
func ExtractContent(articleURL string) (string, error) {
	article, err := readability.FromURL(articleURL, extractTimeout, browserHeaders)
	if err != nil {
		return "", fmt.Errorf("%w: readability extraction from %q: %v", ErrExternalService, articleURL, err)
	}
	return truncateWords(article.TextContent, maxWords), nil
}

// truncateWords returns the first maxWords whitespace-delimited words of s.
func truncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ")
}
