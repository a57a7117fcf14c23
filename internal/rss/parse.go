package rss

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Item is the normalized representation of a single RSS <item>.
// Enclosure is nil when the item carries none; Categories keeps
// document order.
type Item struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	GUID        string   `json:"guid"`
	PubDate     string   `json:"pubDate"`
	Description string   `json:"description"`
	Enclosure   *string  `json:"enclosure"`
	Categories  []string `json:"categories"`

	published time.Time
}

// Extraction is deliberately not a full XML parse: real-world feeds
// are too often malformed for encoding/xml, and the known tag set is
// tiny. Patterns are case-insensitive and span lines.
var (
	itemPattern      = regexp.MustCompile(`(?is)<item(?:\s[^>]*)?>(.*?)</item>`)
	enclosurePattern = regexp.MustCompile(`(?is)<enclosure\s[^>]*url\s*=\s*["']([^"']*)["']`)
	categoryPattern  = regexp.MustCompile(`(?is)<category(?:\s[^>]*)?>(.*?)</category>`)
	cdataPattern     = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	tagPattern       = regexp.MustCompile(`(?s)<[^>]+>`)
	spacePattern     = regexp.MustCompile(`\s+`)

	subTagPatterns = map[string]*regexp.Regexp{
		"title":       subTagPattern("title"),
		"link":        subTagPattern("link"),
		"guid":        subTagPattern("guid"),
		"pubDate":     subTagPattern("pubDate"),
		"description": subTagPattern("description"),
	}

	// Only this fixed set is decoded; every other entity passes
	// through as literal text.
	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
	)
)

func subTagPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + name + `(?:\s[^>]*)?>(.*?)</` + name + `>`)
}

// pubDate formats observed across feeds; tried in order. JS-style
// lenient date parsing boils down to these for RSS 2.0.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2 Jan 2006 15:04:05 -0700",
}

// Parse extracts all <item> blocks from a raw RSS document and
// returns them sorted by publish date descending. Items without a
// parseable pubDate sort as epoch zero, i.e. last.
//
// Per extracted value the order is fixed: unwrap CDATA, then (for
// title, description and category only) strip markup and collapse
// whitespace, then decode the fixed entity set. link, guid and
// pubDate are only trimmed.
func Parse(data string) []Item {
	items := []Item{}

	for _, match := range itemPattern.FindAllStringSubmatch(data, -1) {
		items = append(items, newItem(match[1]))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].published.After(items[j].published)
	})

	return items
}

func newItem(block string) Item {
	item := Item{
		Title:       cleanText(extractSubTag(block, "title")),
		Link:        strings.TrimSpace(unwrapCDATA(extractSubTag(block, "link"))),
		GUID:        strings.TrimSpace(unwrapCDATA(extractSubTag(block, "guid"))),
		PubDate:     strings.TrimSpace(unwrapCDATA(extractSubTag(block, "pubDate"))),
		Description: cleanText(extractSubTag(block, "description")),
		Categories:  []string{},
	}

	if match := enclosurePattern.FindStringSubmatch(block); match != nil {
		url := strings.TrimSpace(match[1])
		item.Enclosure = &url
	}

	for _, match := range categoryPattern.FindAllStringSubmatch(block, -1) {
		item.Categories = append(item.Categories, cleanText(match[1]))
	}

	item.published = parsePubDate(item.PubDate)

	return item
}

func extractSubTag(block string, name string) string {
	match := subTagPatterns[name].FindStringSubmatch(block)
	if match == nil {
		return ""
	}

	return match[1]
}

// cleanText unwraps CDATA, strips markup, collapses runs of
// whitespace to single spaces and decodes the fixed entity set.
func cleanText(value string) string {
	value = unwrapCDATA(value)
	value = tagPattern.ReplaceAllString(value, "")
	value = spacePattern.ReplaceAllString(value, " ")
	value = strings.TrimSpace(value)

	return entityReplacer.Replace(value)
}

func unwrapCDATA(value string) string {
	return cdataPattern.ReplaceAllString(value, "$1")
}

func parsePubDate(value string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Unix(0, 0)
}
