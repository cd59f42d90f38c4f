package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/eringen/cmsconsole/activity"
	"github.com/eringen/cmsconsole/content"
)

// DashboardPage renders the counters and the recent activity feed.
func DashboardPage(d Dashboard) templ.Component {
	return component(func(p *writer) {
		p.raw(`<section class="dashboard rounded-lg bg-gray-50 p-6 shadow-md">`)
		p.raw(`<h2 class="mb-6 text-3xl font-bold text-gray-800">Dashboard</h2>`)
		p.raw(`<p class="leading-relaxed text-gray-600">Welcome to the admin dashboard. Here you can manage your blogs, career opportunities and contact inquiries.</p>`)
		if d.Err != "" {
			p.render(ErrorPanel(d.Err, "/dashboard"))
		} else {
			p.raw(`<div class="mt-6 grid grid-cols-1 gap-4 md:grid-cols-2 lg:grid-cols-3">`)
			countCard(p, "Total Posts", d.Stats.Blogs, "/blogs")
			countCard(p, "Open Positions", d.Stats.Careers, "/career")
			countCard(p, "Contacts", d.Stats.Contacts, "/contacts")
			p.raw(`</div>`)
		}
		p.render(RecentActivity(d.Recent))
		p.raw(`</section>`)
	})
}

func countCard(p *writer, label string, n int, href string) {
	p.f(`<a href="%s" class="card block"><h3 class="text-lg font-semibold text-gray-700">%s</h3><p class="text-2xl font-bold text-indigo-600">%d</p></a>`, href, label, n)
}

// RecentActivity lists the latest admin actions.
func RecentActivity(entries []activity.Entry) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div class="mt-8"><h3 class="mb-3 text-xl font-semibold">Recent activity</h3>`)
		if len(entries) == 0 {
			p.raw(`<p class="text-sm text-slate-500">Nothing has changed yet.</p></div>`)
			return
		}
		p.raw(`<ul class="divide-y rounded-lg border bg-white">`)
		for _, e := range entries {
			p.f(`<li class="flex justify-between gap-4 p-3 text-sm"><span><strong>%s</strong> %s %s</span><time class="text-slate-500">%s</time></li>`,
				e.Actor, e.Action, describe(e), content.FormatDateTime(e.At.Local()))
		}
		p.raw(`</ul></div>`)
	})
}

func describe(e activity.Entry) string {
	noun := e.Resource
	if noun == "career" {
		noun = "career opportunity"
	}
	switch {
	case e.Summary != "":
		return fmt.Sprintf("%s %q", noun, e.Summary)
	case e.ResourceID != 0:
		return fmt.Sprintf("%s #%d", noun, e.ResourceID)
	}
	return noun
}
