// ABOUTME: Dialect-aware RSS 2.0 / Atom parser producing normalized ParsedFeed values
// ABOUTME: Classifies the document before extraction and fails closed on malformed input

package ingest

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"time"

	"feedreader-api/core/domain"
	"golang.org/x/net/html/charset"
)

// maxDescriptionLen is the character cutoff for item descriptions. A
// single ellipsis character is appended when the source text is longer.
const maxDescriptionLen = 300

const ellipsis = "…"

// timeNow is stubbed in tests that exercise the missing-date fallback.
var timeNow = time.Now

// dialect identifies which feed grammar a document follows.
type dialect int

const (
	dialectUnknown dialect = iota
	dialectRSS
	dialectAtom
)

// rssDocument is the typed shape of an RSS 2.0 document. Field tags use
// unqualified local names so namespaced variants (content:encoded,
// media:thumbnail) still match regardless of the declared prefix.
type rssDocument struct {
	XMLName xml.Name    `xml:"rss"`
	Channel *rssChannel `xml:"channel"`
}

type rssChannel struct {
	Titles       []rssTextElement `xml:"title"`
	Descriptions []rssTextElement `xml:"description"`
	Image        rssImage         `xml:"image"`
	Items        []rssItem        `xml:"item"`
}

type rssImage struct {
	URL string `xml:"url"`
}

// title, link and description are collected with their namespace instead
// of as flat strings: an unqualified tag also matches namespaced siblings
// (atom:link, media:title), and the decoder lets the last match win, so a
// trailing empty sibling would blank out the real field.
type rssItem struct {
	Titles         []rssTextElement `xml:"title"`
	Links          []rssLink        `xml:"link"`
	Descriptions   []rssTextElement `xml:"description"`
	ContentEncoded string           `xml:"encoded"`
	PubDate        string           `xml:"pubDate"`
	Enclosure      rssEnclosure     `xml:"enclosure"`
	Thumbnails     []mediaThumbnail `xml:"thumbnail"`
}

type rssTextElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// rssLink carries both shapes a link element takes in the wild: plain RSS
// text content and the atom:link href attribute.
type rssLink struct {
	XMLName xml.Name
	Href    string `xml:"href,attr"`
	Rel     string `xml:"rel,attr"`
	Value   string `xml:",chardata"`
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

type mediaThumbnail struct {
	URL string `xml:"url,attr"`
}

// atomFeed is the typed shape of an Atom document.
type atomFeed struct {
	XMLName  xml.Name    `xml:"feed"`
	Title    string      `xml:"title"`
	Subtitle string      `xml:"subtitle"`
	Logo     string      `xml:"logo"`
	Icon     string      `xml:"icon"`
	Entries  []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title      string           `xml:"title"`
	Links      []atomLink       `xml:"link"`
	Summary    string           `xml:"summary"`
	Content    string           `xml:"content"`
	Published  string           `xml:"published"`
	Updated    string           `xml:"updated"`
	Thumbnails []mediaThumbnail `xml:"thumbnail"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// Parse turns raw feed XML into a normalized ParsedFeed. Errors carry
// the exact user-facing messages defined in errors.go. Adversarial input
// never escapes as a raw parser error; anything unclassified degrades to
// ErrNotAFeed.
func Parse(xmlText string) (feed *domain.ParsedFeed, err error) {
	defer func() {
		if r := recover(); r != nil {
			feed = nil
			err = ErrNotAFeed
		}
	}()

	data := []byte(xmlText)

	switch detectDialect(data) {
	case dialectRSS:
		var doc rssDocument
		if err := decodeDocument(data, &doc); err != nil || doc.Channel == nil {
			return nil, ErrNotAFeed
		}
		return buildFromRSS(doc.Channel)
	case dialectAtom:
		var doc atomFeed
		if err := decodeDocument(data, &doc); err != nil {
			return nil, ErrNotAFeed
		}
		return buildFromAtom(&doc)
	default:
		return nil, ErrNotAFeed
	}
}

// detectDialect classifies the document by its root element before any
// field extraction happens.
func detectDialect(data []byte) dialect {
	dec := newDecoder(data)
	for {
		tok, err := dec.Token()
		if err != nil {
			return dialectUnknown
		}
		if start, ok := tok.(xml.StartElement); ok {
			switch start.Name.Local {
			case "rss":
				return dialectRSS
			case "feed":
				return dialectAtom
			default:
				return dialectUnknown
			}
		}
	}
}

func decodeDocument(data []byte, v interface{}) error {
	return newDecoder(data).Decode(v)
}

// newDecoder builds an XML decoder tolerant of the encoding variance
// seen in real-world feeds.
func newDecoder(data []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return charset.NewReaderLabel(label, input)
	}
	return dec
}

func buildFromRSS(ch *rssChannel) (*domain.ParsedFeed, error) {
	if len(ch.Items) == 0 {
		return nil, ErrNoArticles
	}

	title := rssText(ch.Titles)
	if title == "" {
		return nil, ErrMissingTitle
	}

	feed := &domain.ParsedFeed{
		Title:       title,
		Description: rssText(ch.Descriptions),
		ImageURL:    strings.TrimSpace(ch.Image.URL),
	}

	for _, item := range ch.Items {
		itemTitle := rssText(item.Titles)
		link := rssItemLink(item.Links)
		if itemTitle == "" || link == "" {
			// Not an error: unusable items are dropped silently.
			continue
		}

		feed.Articles = append(feed.Articles, domain.ParsedArticle{
			Title:       itemTitle,
			Link:        link,
			Description: truncateDescription(rssText(item.Descriptions)),
			Content:     strings.TrimSpace(item.ContentEncoded),
			PubDate:     dateOrNow(item.PubDate),
			ImageURL:    resolveRSSImage(item),
			Source:      title,
		})
	}

	if len(feed.Articles) == 0 {
		return nil, ErrNoValidArticles
	}

	return feed, nil
}

func buildFromAtom(doc *atomFeed) (*domain.ParsedFeed, error) {
	if len(doc.Entries) == 0 {
		return nil, ErrNoArticles
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	feed := &domain.ParsedFeed{
		Title:       title,
		Description: strings.TrimSpace(doc.Subtitle),
		ImageURL:    atomFeedImage(doc),
	}

	for _, entry := range doc.Entries {
		entryTitle := strings.TrimSpace(entry.Title)
		link := entryLink(entry.Links)
		if entryTitle == "" || link == "" {
			continue
		}

		feed.Articles = append(feed.Articles, domain.ParsedArticle{
			Title:       entryTitle,
			Link:        link,
			Description: truncateDescription(strings.TrimSpace(entry.Summary)),
			Content:     strings.TrimSpace(entry.Content),
			PubDate:     atomEntryDate(entry),
			ImageURL:    resolveAtomImage(entry),
			Source:      title,
		})
	}

	if len(feed.Articles) == 0 {
		return nil, ErrNoValidArticles
	}

	return feed, nil
}

// rssText selects the element in the default (empty) namespace, so a
// media:title sibling never shadows the item's own title. Feeds that
// qualify every element fall back to the first non-empty value.
func rssText(elems []rssTextElement) string {
	for _, e := range elems {
		if e.XMLName.Space == "" {
			return strings.TrimSpace(e.Value)
		}
	}
	for _, e := range elems {
		if v := strings.TrimSpace(e.Value); v != "" {
			return v
		}
	}
	return ""
}

// rssItemLink prefers the plain RSS <link> text. An item that only
// carries atom:link elements still resolves through the alternate href;
// rel="self" and friends never qualify.
func rssItemLink(links []rssLink) string {
	for _, l := range links {
		if l.XMLName.Space == "" {
			if v := strings.TrimSpace(l.Value); v != "" {
				return v
			}
		}
	}
	for _, l := range links {
		if (l.Rel == "" || l.Rel == "alternate") && strings.TrimSpace(l.Href) != "" {
			return strings.TrimSpace(l.Href)
		}
	}
	return ""
}

// entryLink picks the alternate link when one is flagged, otherwise the
// first link carrying an href.
func entryLink(links []atomLink) string {
	for _, l := range links {
		if (l.Rel == "" || l.Rel == "alternate") && strings.TrimSpace(l.Href) != "" {
			return strings.TrimSpace(l.Href)
		}
	}
	for _, l := range links {
		if strings.TrimSpace(l.Href) != "" {
			return strings.TrimSpace(l.Href)
		}
	}
	return ""
}

func atomFeedImage(doc *atomFeed) string {
	if logo := strings.TrimSpace(doc.Logo); logo != "" {
		return logo
	}
	return strings.TrimSpace(doc.Icon)
}

// atomEntryDate prefers published, falls back to updated, then to the
// wall clock at parse time.
func atomEntryDate(entry atomEntry) string {
	if d := strings.TrimSpace(entry.Published); d != "" {
		return d
	}
	return dateOrNow(entry.Updated)
}

// dateOrNow preserves the source date string as-is, substituting the
// current time only when the source omits it.
func dateOrNow(raw string) string {
	if d := strings.TrimSpace(raw); d != "" {
		return d
	}
	return timeNow().UTC().Format(time.RFC3339)
}

// truncateDescription cuts to the first maxDescriptionLen characters and
// appends a single ellipsis character. The cut is character-count based,
// not word-boundary aware.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen]) + ellipsis
}
