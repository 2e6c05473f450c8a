// ABOUTME: Image extraction heuristics for feed items
// ABOUTME: Priority chain: image enclosure, media:thumbnail, first inline img tag

package ingest

import (
	"regexp"
	"strings"
)

// inlineImgPattern is a narrow, bounded heuristic for pulling the first
// <img src> out of an HTML fragment. It deliberately is not a full HTML
// parse so malformed inner markup stays tolerated.
var inlineImgPattern = regexp.MustCompile(`(?i)<img[^>]+src\s*=\s*["']([^"']+)["']`)

// resolveRSSImage applies the priority chain to an RSS item. First match
// wins; an empty result is a normal, non-error outcome.
func resolveRSSImage(item rssItem) string {
	if item.Enclosure.URL != "" && strings.HasPrefix(item.Enclosure.Type, "image/") {
		return item.Enclosure.URL
	}
	if url := firstThumbnail(item.Thumbnails); url != "" {
		return url
	}
	return firstInlineImage(rssText(item.Descriptions), item.ContentEncoded)
}

// resolveAtomImage applies the chain to an Atom entry. Atom has no
// enclosure element, so the chain starts at media:thumbnail.
func resolveAtomImage(entry atomEntry) string {
	if url := firstThumbnail(entry.Thumbnails); url != "" {
		return url
	}
	return firstInlineImage(entry.Summary, entry.Content)
}

func firstThumbnail(thumbnails []mediaThumbnail) string {
	for _, t := range thumbnails {
		if url := strings.TrimSpace(t.URL); url != "" {
			return url
		}
	}
	return ""
}

// firstInlineImage scans the given HTML fragments in order and returns
// the src of the first inline image found.
func firstInlineImage(fragments ...string) string {
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		if m := inlineImgPattern.FindStringSubmatch(fragment); m != nil {
			return m[1]
		}
	}
	return ""
}
