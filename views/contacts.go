package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/richtext"
)

// ContactsPage renders the inbox: header, stats, search, list and the
// details sidebar of the selected contact.
func ContactsPage(c *content.Contacts, v ContactsView, csrf string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<section class="contacts">`)
		p.raw(`<div class="mb-6 flex items-center justify-between"><div><h2 class="text-3xl font-bold">Contact Manager</h2>`)
		p.raw(`<p class="text-slate-600">Manage all your contacts in one place</p></div>`)
		p.f(`<a href="%s" class="btn btn-outline">Refresh</a></div>`, contactsURL(v.Query, v.Sort, 0))

		if c.Err != "" && len(c.Contacts) == 0 {
			p.render(ErrorPanel(c.Err, contactsURL(v.Query, v.Sort, 0)))
			p.raw(`</section>`)
			return
		}

		stats := c.Stats()
		p.raw(`<div class="mb-6 grid grid-cols-1 gap-4 md:grid-cols-3">`)
		statCard(p, "Total Contacts", stats.Total)
		statCard(p, "Companies", stats.Companies)
		statCard(p, "Services", stats.Services)
		p.raw(`</div>`)

		p.raw(`<form method="get" action="/contacts" class="mb-4 flex gap-2" role="search">`)
		p.f(`<input type="search" name="q" value="%s" placeholder="Search by name, email or company..." class="input flex-1"/>`, v.Query)
		p.raw(`<label class="text-sm text-slate-600">Sorted by: <select name="sort" class="input">`)
		p.f(`<option value="recent"%s>Recent</option>`, attrIf(v.Sort != content.SortName, "selected"))
		p.f(`<option value="name"%s>Name A-Z</option></select></label>`, attrIf(v.Sort == content.SortName, "selected"))
		p.raw(`<button type="submit" class="btn btn-primary">Search</button></form>`)

		p.raw(`<div class="flex gap-6"><div id="contacts-list" class="flex-1">`)
		list := content.SortContacts(c.Search(v.Query), v.Sort)
		if len(list) == 0 {
			emptyState(p, "No contacts found", "Try adjusting your search terms")
		} else {
			p.raw(`<ul class="divide-y rounded-lg border bg-white">`)
			for _, ct := range list {
				selected := c.Selected != nil && c.Selected.ID == ct.ID
				contactItem(p, ct, v, selected)
			}
			p.raw(`</ul>`)
		}
		p.raw(`</div>`)
		p.render(ContactSidebar(c.Selected, v, csrf))
		p.raw(`</div></section>`)
	})
}

func statCard(p *writer, label string, n int) {
	p.f(`<div class="card"><h3 class="text-lg font-semibold text-gray-700">%s</h3><p class="text-2xl font-bold text-indigo-600">%d</p></div>`, label, n)
}

func contactItem(p *writer, ct api.Contact, v ContactsView, selected bool) {
	// Selecting the open contact again closes it, so its link points back
	// to the bare inbox.
	href := contactsURL(v.Query, v.Sort, ct.ID)
	if selected {
		href = contactsURL(v.Query, v.Sort, 0)
	}
	p.f(`<li class="contact-item%s"><a href="%s" class="block p-4">`, attrClass(selected, " selected"), href)
	p.f(`<div class="font-semibold">%s</div><div class="text-sm text-slate-600">%s</div>`, ct.Name, ct.Email)
	if ct.CompanyName != "" {
		p.f(`<div class="text-xs text-slate-500">%s</div>`, ct.CompanyName)
	}
	p.raw(`</a></li>`)
}

// ContactSidebar shows the selected contact, or a prompt when none is.
func ContactSidebar(ct *api.Contact, v ContactsView, csrf string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<aside id="contact-details" class="card w-96 shrink-0">`)
		if ct == nil {
			p.raw(`<h3 class="text-lg font-semibold">Select a Contact</h3><p class="text-slate-500">Choose a contact to view details</p></aside>`)
			return
		}
		p.f(`<div class="flex items-start justify-between"><h3 class="text-lg font-semibold">Contact Details</h3><a href="%s" aria-label="Close">✕</a></div>`,
			contactsURL(v.Query, v.Sort, 0))
		p.f(`<p class="mb-4 text-xl font-bold">%s</p><dl class="details">`, ct.Name)
		if ct.Email != "" {
			p.f(`<div class="detail-row"><dt>Email</dt><dd><a href="mailto:%s">%s</a></dd></div>`, ct.Email, ct.Email)
		}
		if ct.Mobile != "" {
			p.f(`<div class="detail-row"><dt>Phone</dt><dd><a href="tel:%s">%s</a></dd></div>`, ct.Mobile, ct.Mobile)
		}
		detailRow(p, "Company", ct.CompanyName)
		if href := richtext.SafeURL(ct.CompanyWebsite); href != "" {
			p.f(`<div class="detail-row"><dt>Website</dt><dd><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></dd></div>`, href, ct.CompanyWebsite)
		}
		p.raw(`</dl>`)

		if ct.Date != "" || ct.Time != "" {
			p.raw(`<h4 class="section-title">Meeting Details</h4><dl class="details">`)
			detailRow(p, "Date", content.FormatDate(ct.Date))
			detailRow(p, "Time", ct.Time)
			p.raw(`</dl>`)
		}
		if ct.Description != "" {
			p.f(`<h4 class="section-title">Description</h4><p class="whitespace-pre-line text-sm">%s</p>`, ct.Description)
		}

		p.raw(`<h4 class="section-title">Services</h4>`)
		if len(ct.ServiceIDs) == 0 {
			p.raw(`<p class="text-sm text-slate-500">No services specified</p>`)
		} else {
			p.raw(`<div class="flex flex-wrap gap-1">`)
			for _, s := range ct.ServiceIDs {
				p.f(`<span class="tag">%s</span>`, s)
			}
			p.raw(`</div>`)
		}
		if received := content.FormatDateTime(ct.CreatedAt); received != "" {
			p.f(`<p class="mt-4 text-xs text-slate-500">Received %s</p>`, received)
		}
		p.raw(`<div class="mt-4">`)
		deleteButton(p, contactsURL(v.Query, v.Sort, ct.ID), csrf, "Remove "+ct.Name+" from the inbox?")
		p.raw(`</div></aside>`)
	})
}
