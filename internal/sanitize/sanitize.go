// Package sanitize cleans user-supplied comment markup and turns bare
// URLs into links.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"mvdan.cc/xurls/v2"
)

// Options configures which markup survives sanitization. The zero value
// is the safe default: no tags, no attributes.
type Options struct {
	AllowedTags       []string
	AllowedAttributes map[string][]string
}

// Sanitizer strips disallowed markup and wraps bare URLs in anchors.
// Clean is idempotent: feeding its output back in returns it unchanged.
type Sanitizer struct {
	policy *bluemonday.Policy
	urls   *regexp.Regexp
}

// httpURLs only matches http and https; other registered schemes
// (javascript, file, tel) must never come back as anchors.
var httpURLs = func() *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		panic(err)
	}
	return re
}()

// New compiles the sanitizer policy once; the result is safe for
// concurrent use.
func New(opts Options) *Sanitizer {
	p := bluemonday.NewPolicy()
	allowed := make(map[string]bool, len(opts.AllowedTags))
	for _, tag := range opts.AllowedTags {
		allowed[tag] = true
		if tag == "a" {
			// Kept links need href to survive and carry rel=nofollow,
			// same as the anchors linkify generates.
			p.AllowStandardURLs()
			p.AllowElements("a")
			continue
		}
		p.AllowElements(tag)
	}
	// Attribute grants on a tag that is not itself allowed would
	// implicitly whitelist the tag; an allowed tag set governs.
	for tag, attrs := range opts.AllowedAttributes {
		if !allowed[tag] {
			continue
		}
		p.AllowAttrs(attrs...).OnElements(tag)
	}
	return &Sanitizer{policy: p, urls: httpURLs}
}

// Clean sanitizes text, linkifies bare URLs and trims surrounding
// whitespace. A body that is only whitespace or stripped markup comes
// back as the empty string.
func (s *Sanitizer) Clean(text string) string {
	return strings.TrimSpace(s.linkify(s.policy.Sanitize(text)))
}

// linkify wraps bare URLs in text nodes with <a rel="nofollow"> anchors.
// URLs already inside an anchor, or inside tag attributes, are left
// alone so repeated passes settle on the same output.
func (s *Sanitizer) linkify(input string) string {
	tok := html.NewTokenizer(strings.NewReader(input))
	var out strings.Builder
	anchorDepth := 0
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return out.String()
		case html.TextToken:
			text := string(tok.Text())
			if anchorDepth > 0 {
				out.WriteString(html.EscapeString(text))
			} else {
				out.WriteString(s.linkifyText(text))
			}
		case html.StartTagToken:
			raw := string(tok.Raw())
			if name, _ := tok.TagName(); string(name) == "a" {
				anchorDepth++
			}
			out.WriteString(raw)
		case html.EndTagToken:
			raw := string(tok.Raw())
			if name, _ := tok.TagName(); string(name) == "a" && anchorDepth > 0 {
				anchorDepth--
			}
			out.WriteString(raw)
		default:
			out.WriteString(string(tok.Raw()))
		}
	}
}

func (s *Sanitizer) linkifyText(text string) string {
	matches := s.urls.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return html.EscapeString(text)
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(html.EscapeString(text[last:m[0]]))
		url := html.EscapeString(text[m[0]:m[1]])
		b.WriteString(`<a href="` + url + `" rel="nofollow">` + url + `</a>`)
		last = m[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
