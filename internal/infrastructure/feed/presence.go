package feed

import (
	"bytes"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// fields records which optional elements an item carries, whatever their
// text. The rss decoder reports a missing element and an empty one alike.
type fields struct {
	title, link, description bool
}

var rssNamespaces = map[string]bool{
	"": true,
	"http://purl.org/rss/1.0/":                    true,
	"http://my.netscape.com/rdf/simple/0.9/":      true,
	"http://backend.userland.com/rss2":            true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#": true,
}

// scanItems walks body and reports, per item in document order, which of
// title, link and description are present as direct children. ok is false
// when the document cannot be walked.
func scanItems(body []byte) (items []fields, ok bool) {
	p := xpp.NewXMLPullParser(bytes.NewReader(body), false, charset.NewReaderLabel)

	depth, itemDepth := 0, -1
	for {
		event, err := p.Next()
		if err != nil {
			return nil, false
		}
		switch event {
		case xpp.EndDocument:
			return items, true
		case xpp.StartTag:
			depth++
			if !rssNamespaces[p.Space] {
				continue
			}
			name := strings.ToLower(p.Name)
			if itemDepth < 0 {
				if name == "item" {
					itemDepth = depth
					items = append(items, fields{})
				}
				continue
			}
			if depth != itemDepth+1 {
				continue
			}
			cur := &items[len(items)-1]
			switch name {
			case "title":
				cur.title = true
			case "link":
				cur.link = true
			case "description":
				cur.description = true
			}
		case xpp.EndTag:
			if depth == itemDepth {
				itemDepth = -1
			}
			depth--
		}
	}
}
