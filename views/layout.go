package views

import "github.com/a-h/templ"

var navItems = []struct{ key, href, icon, label string }{
	{"dashboard", "/dashboard", "📊", "Dashboard"},
	{"blogs", "/blogs", "📝", "Blogs"},
	{"career", "/career", "💼", "Career"},
	{"contacts", "/contacts", "📩", "Contacts"},
}

func document(p *writer, page Page, body func()) {
	title := "Admin Panel"
	if page.Title != "" {
		title = page.Title + " | Admin Panel"
	}
	p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
	p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	p.f(`<meta name="csrf-token" content="%s"/>`, page.CSRF)
	p.f(`<title>%s</title>`, title)
	p.raw(`<link rel="stylesheet" href="/public/console.css"/>`)
	p.raw(`<script src="/public/console.js" defer></script></head>`)
	p.raw(`<body class="min-h-screen bg-gray-50 text-gray-800">`)
	body()
	p.render(Toasts(page.Flashes))
	p.raw(`</body></html>`)
}

// Layout wraps body in the signed-in shell: navbar, sidebar and toasts.
func Layout(page Page, body templ.Component) templ.Component {
	return component(func(p *writer) {
		document(p, page, func() {
			p.raw(`<nav class="navbar flex items-center justify-between border-b border-slate-300 bg-white px-6 py-3">`)
			p.raw(`<a href="/dashboard" class="text-xl font-bold">Admin Panel</a><div class="flex items-center gap-4">`)
			if page.Email != "" {
				p.f(`<span class="text-sm text-slate-600">%s</span>`, page.Email)
			}
			p.f(`<form method="post" action="/logout"><input type="hidden" name="_csrf" value="%s"/>`, page.CSRF)
			p.raw(`<button type="submit" class="btn btn-outline">Log Out</button></form></div></nav>`)

			p.raw(`<div class="flex"><aside class="sidebar hidden w-64 border-r border-slate-300 p-4 pt-9 lg:block"><ul>`)
			for _, it := range navItems {
				p.f(`<li class="mb-4"><a href="%s" class="%s"><span>%s</span><span>%s</span></a></li>`,
					it.href, navClass(it.key == page.Active), it.icon, it.label)
			}
			p.raw(`</ul></aside><main id="main" class="flex-1 p-6">`)
			p.render(body)
			p.raw(`</main></div>`)
		})
	})
}

// Bare wraps body without the sidebar, for the sign-in screens.
func Bare(page Page, body templ.Component) templ.Component {
	return component(func(p *writer) {
		document(p, page, func() {
			p.raw(`<main class="flex min-h-screen items-center justify-center p-6">`)
			p.render(body)
			p.raw(`</main>`)
		})
	})
}

// Toasts renders queued notifications. They dismiss themselves client-side.
func Toasts(flashes []Flash) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div id="toasts" class="toasts" aria-live="polite">`)
		for _, fl := range flashes {
			p.f(`<div class="%s" role="status" data-toast>%s</div>`, toastClass(fl.Kind), fl.Message)
		}
		p.raw(`</div>`)
	})
}

// ErrorPanel reports a failed fetch and offers a retry.
func ErrorPanel(message, retryURL string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div class="error-panel rounded-lg border border-red-200 bg-red-50 p-6 text-center">`)
		p.raw(`<h3 class="mb-2 text-lg font-semibold text-red-700">Oops!</h3>`)
		p.f(`<p class="mb-4 text-red-600">%s</p>`, message)
		p.f(`<a href="%s" class="btn btn-primary">Try again</a></div>`, retryURL)
	})
}

func emptyState(p *writer, title, hint string) {
	p.raw(`<div class="empty-state rounded-lg border border-dashed border-slate-300 p-10 text-center">`)
	p.f(`<p class="text-lg font-semibold text-slate-600">%s</p>`, title)
	if hint != "" {
		p.f(`<p class="text-sm text-slate-500">%s</p>`, hint)
	}
	p.raw(`</div>`)
}

// modal renders an overlay dialog. Closing navigates to closeURL.
func modal(p *writer, title, closeURL string, body func()) {
	p.raw(`<div class="modal-backdrop" role="dialog" aria-modal="true"><div class="modal">`)
	p.f(`<div class="modal-header"><h2 class="text-xl font-bold">%s</h2><a href="%s" class="modal-close" aria-label="Close">✕</a></div>`, title, closeURL)
	p.raw(`<div class="modal-body">`)
	body()
	p.raw(`</div></div></div>`)
}

func csrfInput(p *writer, token string) {
	p.f(`<input type="hidden" name="_csrf" value="%s"/>`, token)
}

func deleteButton(p *writer, action, csrf, confirm string) {
	p.f(`<form method="post" action="%s" class="inline" data-confirm="%s">`, action, confirm)
	p.raw(`<input type="hidden" name="_method" value="DELETE"/>`)
	csrfInput(p, csrf)
	p.raw(`<button type="submit" class="btn btn-danger">Delete</button></form>`)
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return Bare(Page{Title: "Not found"}, component(func(p *writer) {
		p.raw(`<div class="text-center"><h1 class="mb-2 text-3xl font-bold">Page not found</h1>`)
		p.raw(`<a href="/dashboard" class="text-indigo-600 underline">Back to dashboard</a></div>`)
	}))
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return Bare(Page{Title: "Error"}, component(func(p *writer) {
		p.raw(`<div class="text-center"><h1 class="mb-2 text-3xl font-bold">Something went wrong</h1>`)
		p.raw(`<p class="text-slate-600">Please try again later.</p></div>`)
	}))
}
