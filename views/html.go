// Package views renders the console's pages and fragments.
//
// Components are plain templ.Components. Every value is escaped when written
// unless it is wrapped in safe, which is reserved for markup produced by this
// package or by richtext.Sanitize.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// safe marks a string as trusted markup.
type safe string

type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(p *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{ctx: ctx, w: w}
		fn(p)
		return p.err
	})
}

func (p *writer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *writer) text(s string) {
	p.raw(templ.EscapeString(s))
}

// f formats markup. String arguments are escaped, safe arguments are not.
func (p *writer) f(format string, args ...any) {
	for i, a := range args {
		switch v := a.(type) {
		case string:
			args[i] = templ.EscapeString(v)
		case safe:
			args[i] = string(v)
		}
	}
	p.raw(fmt.Sprintf(format, args...))
}

func (p *writer) render(c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(p.ctx, p.w)
}

func attrIf(cond bool, attr string) safe {
	if cond {
		return safe(" " + attr)
	}
	return ""
}
