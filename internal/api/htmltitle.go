package api

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// errorPageTitle pulls the <title> out of an HTML error body. Reverse
// proxies answer with full HTML pages when the backend is down, and the
// title ("502 Bad Gateway") is the only useful diagnostic in them.
func errorPageTitle(body string) string {
	if !strings.Contains(body, "<") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
