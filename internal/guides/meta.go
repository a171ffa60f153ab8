package guides

import (
	"strings"

	"golang.org/x/net/html"
)

// metaDescription returns the content of the first <meta name="description">
// tag in page, or "" when there is none.
func metaDescription(page string) string {
	z := html.NewTokenizer(strings.NewReader(page))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}

			var isDescription bool
			var content string
			var hasContent bool
			for {
				key, val, more := z.TagAttr()
				switch string(key) {
				case "name":
					isDescription = strings.EqualFold(string(val), "description")
				case "content":
					content, hasContent = string(val), true
				}
				if !more {
					break
				}
			}
			if isDescription && hasContent {
				return content
			}
		}
	}
}
