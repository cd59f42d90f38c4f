// Package richtext handles the HTML produced by the console's rich-text
// editor: plain-text extraction for list excerpts, structural comparison for
// editor reconciliation and sanitising before stored content is rendered.
package richtext

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	reTag        = regexp.MustCompile(`<[^>]*>`)
	reWhitespace = regexp.MustCompile(`[ \t\r\n\f]+`)
	entities     = strings.NewReplacer("&nbsp;", " ", "&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// StripTags removes every tag from s, decodes the few entities the editor
// emits and trims the result.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(entities.Replace(reTag.ReplaceAllString(s, "")))
}

// Excerpt returns at most n runes of the plain text of s, with an ellipsis
// when it was cut.
func Excerpt(s string, n int) string {
	text := reWhitespace.ReplaceAllString(StripTags(s), " ")
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// Normalize returns a canonical serialisation of s: attributes sorted,
// entities re-encoded, whitespace runs collapsed and comments dropped.
// Markup without any visible content normalises to "".
func Normalize(s string) string {
	var w walker
	return w.run(s)
}

// Equal reports whether a and b are structurally the same document.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

var policy = newPolicy()

// newPolicy extends the user-content policy with the link targets the
// editor produces. Links opening a new tab get rel="noopener".
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	return p
}

// Sanitize keeps only formatting markup: scripts, styles, embeds, event
// handlers and unsafe URLs are removed, unknown elements are unwrapped.
func Sanitize(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// HTML renders sanitised stored content inside a prose container.
func HTML(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="prose max-w-none">`)
		buf.WriteString(Sanitize(content))
		buf.WriteString(`</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// SafeURL returns raw if it is relative or uses an allowed scheme,
// otherwise "". The result is not escaped.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}

var (
	void = map[atom.Atom]bool{atom.Br: true, atom.Hr: true, atom.Img: true}
	// containers never hold meaningful whitespace text of their own.
	containers = map[atom.Atom]bool{
		atom.Ul: true, atom.Ol: true, atom.Table: true, atom.Thead: true,
		atom.Tbody: true, atom.Tr: true,
	}
	blocks = map[atom.Atom]bool{
		atom.P: true, atom.Div: true, atom.H1: true, atom.H2: true, atom.H3: true,
		atom.H4: true, atom.H5: true, atom.H6: true, atom.Ul: true, atom.Ol: true,
		atom.Li: true, atom.Blockquote: true, atom.Pre: true, atom.Table: true, atom.Hr: true,
	}
)

// walker serialises a fragment canonically for Normalize.
type walker struct {
	buf     strings.Builder
	visible bool
}

func (w *walker) run(s string) string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return strings.TrimSpace(s)
	}
	for i, n := range nodes {
		var prev, next *html.Node
		if i > 0 {
			prev = nodes[i-1]
		}
		if i+1 < len(nodes) {
			next = nodes[i+1]
		}
		w.node(n, nil, prev, next)
	}
	if !w.visible {
		return ""
	}
	return strings.TrimSpace(w.buf.String())
}

func (w *walker) node(n, parent, prev, next *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n, parent, prev, next)
	case html.ElementNode:
		w.element(n)
	}
}

func (w *walker) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c, n, c.PrevSibling, c.NextSibling)
	}
}

func (w *walker) text(n, parent, prev, next *html.Node) {
	data := n.Data
	if strings.TrimSpace(data) != "" {
		w.visible = true
	} else {
		if parent == nil || containers[parent.DataAtom] || isBlock(prev) || isBlock(next) {
			return
		}
	}
	if parent == nil || parent.DataAtom != atom.Pre {
		data = reWhitespace.ReplaceAllString(data, " ")
		atEdge := parent == nil || blocks[parent.DataAtom]
		if atEdge && (prev == nil || isBlock(prev)) {
			data = strings.TrimLeft(data, " ")
		}
		if atEdge && (next == nil || isBlock(next)) {
			data = strings.TrimRight(data, " ")
		}
	}
	w.buf.WriteString(html.EscapeString(data))
}

func (w *walker) element(n *html.Node) {
	if n.DataAtom == atom.Img || n.DataAtom == atom.Hr {
		w.visible = true
	}

	w.buf.WriteString("<")
	w.buf.WriteString(n.Data)
	for _, a := range w.attrs(n) {
		w.buf.WriteString(" ")
		w.buf.WriteString(a.Key)
		w.buf.WriteString(`="`)
		w.buf.WriteString(html.EscapeString(a.Val))
		w.buf.WriteString(`"`)
	}
	w.buf.WriteString(">")
	if void[n.DataAtom] {
		return
	}
	w.children(n)
	w.buf.WriteString("</")
	w.buf.WriteString(n.Data)
	w.buf.WriteString(">")
}

func (w *walker) attrs(n *html.Node) []html.Attribute {
	var out []html.Attribute
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		out = append(out, html.Attribute{Key: strings.ToLower(a.Key), Val: a.Val})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func isBlock(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && blocks[n.DataAtom]
}
