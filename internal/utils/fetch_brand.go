package utils

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchBrandInfo pulls the paragraph text from the roboMUA brand page so the
// fallback responder can answer questions about the product. The page layout
// has changed before, so a few selectors are tried in turn.
func FetchBrandInfo(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("error downloading brand page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status no OK: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error parsing HTML: %w", err)
	}

	collect := func(selection *goquery.Selection) string {
		var buf bytes.Buffer
		selection.Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" {
				buf.WriteString(text + "\n")
			}
		})
		return buf.String()
	}

	content := collect(doc.Find("article p"))
	if content == "" {
		content = collect(doc.Find("main p"))
	}
	if content == "" {
		content = collect(doc.Find("p"))
	}
	if content == "" {
		return "", fmt.Errorf("couldn't extract info from brand page: no <p> text found")
	}
	return content, nil
}
