// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package richtext turns long-form bodies into sanitized HTML. Portable Text
// block arrays are rendered here; Markdown strings go through the markdown
// package. Both paths end in the same bluemonday policy.
package richtext

import (
	"html"
	"html/template"
	"log/slog"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"rooters/internal/imaging"
	"rooters/internal/markdown"
	"rooters/internal/models"
)

// bodyImageWidth is the rendered width of images embedded in a body.
const bodyImageWidth = 1200

var headingID = regexp.MustCompile(`^[a-z0-9-]+$`)

func buildPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("id").Matching(headingID).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("loading", "srcset", "sizes").OnElements("img")
	return policy
}

// Renderer renders rich text bodies. It is safe for concurrent use.
type Renderer struct {
	images *imaging.Builder
	policy *bluemonday.Policy
}

// New returns a Renderer that resolves embedded images through images.
func New(images *imaging.Builder) *Renderer {
	return &Renderer{images: images, policy: buildPolicy()}
}

// HTML renders rt. An empty body renders as "".
func (r *Renderer) HTML(rt models.RichText) template.HTML {
	if rt.IsEmpty() {
		return ""
	}

	var raw string
	if len(rt.Blocks) > 0 {
		raw = r.blocks(rt.Blocks)
	} else {
		out, err := markdown.ToHTML(rt.Markdown)
		if err != nil {
			slog.Warn("rendering markdown body", "error", err)
			return ""
		}
		raw = out
	}
	return template.HTML(r.policy.Sanitize(raw))
}

var blockTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"blockquote": "blockquote",
}

var decoratorTags = map[string]string{
	"strong":         "strong",
	"em":             "em",
	"code":           "code",
	"underline":      "u",
	"strike-through": "s",
}

var listTags = map[string]string{
	"bullet": "ul",
	"number": "ol",
}

// blocks renders Portable Text. Consecutive list items are grouped into
// ul/ol elements, nested by level. Unknown block types are skipped.
func (r *Renderer) blocks(blocks []models.Block) string {
	var b strings.Builder
	var lists []string

	closeLists := func(depth int) {
		for len(lists) > depth {
			b.WriteString("</li></" + lists[len(lists)-1] + ">")
			lists = lists[:len(lists)-1]
		}
	}

	for _, blk := range blocks {
		switch blk.Type {
		case "block":
			if tag, ok := listTags[blk.ListItem]; ok {
				level := max(blk.Level, 1)
				closeLists(level)
				if len(lists) == level && lists[level-1] != tag {
					closeLists(level - 1)
				}
				if len(lists) == level {
					b.WriteString("</li>")
				}
				for len(lists) < level {
					b.WriteString("<" + tag + ">")
					lists = append(lists, tag)
				}
				b.WriteString("<li>")
				b.WriteString(spans(blk))
				continue
			}

			closeLists(0)
			tag, ok := blockTags[blk.Style]
			if !ok {
				tag = "p"
			}
			b.WriteString("<" + tag + ">")
			b.WriteString(spans(blk))
			b.WriteString("</" + tag + ">")

		case "image":
			closeLists(0)
			img := &models.Image{Asset: blk.Asset, Alt: blk.Alt}
			src := r.images.URL(img, bodyImageWidth, 0)
			if src == "" {
				continue
			}
			b.WriteString(`<figure><img src="` + html.EscapeString(src) + `" alt="` + html.EscapeString(blk.Alt) + `" loading="lazy"></figure>`)

		default:
			// unknown custom block types render nothing
		}
	}
	closeLists(0)
	return b.String()
}

// spans renders the inline children of a block with their marks.
func spans(blk models.Block) string {
	links := make(map[string]string, len(blk.MarkDefs))
	for _, def := range blk.MarkDefs {
		if def.Type == "link" && def.Href != "" {
			links[def.Key] = def.Href
		}
	}

	var b strings.Builder
	for _, s := range blk.Children {
		if s.Type != "span" && s.Type != "" {
			continue
		}
		text := strings.ReplaceAll(html.EscapeString(s.Text), "\n", "<br>")

		var open, closing []string
		for _, m := range s.Marks {
			if tag, ok := decoratorTags[m]; ok {
				open = append(open, "<"+tag+">")
				closing = append(closing, "</"+tag+">")
				continue
			}
			if href, ok := links[m]; ok {
				open = append(open, `<a href="`+html.EscapeString(href)+`">`)
				closing = append(closing, "</a>")
			}
		}

		for _, o := range open {
			b.WriteString(o)
		}
		b.WriteString(text)
		for i := len(closing) - 1; i >= 0; i-- {
			b.WriteString(closing[i])
		}
	}
	return b.String()
}
