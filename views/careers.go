package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/richtext"
	"github.com/eringen/cmsconsole/widget"
)

// ChoiceOptions converts a taxonomy into select options.
func ChoiceOptions(choices []content.Choice) []widget.Option {
	out := make([]widget.Option, 0, len(choices))
	for _, c := range choices {
		out = append(out, widget.Option{Value: c.Value, Label: c.Label, Description: c.Description})
	}
	return out
}

// CareersPage renders the listings filtered by category, with overlay on top.
func CareersPage(c *content.Careers, category, csrf string, overlay templ.Component) templ.Component {
	return component(func(p *writer) {
		p.raw(`<section class="careers">`)
		p.raw(`<div class="mb-6 flex items-center justify-between"><h2 class="text-3xl font-bold">Open Positions</h2>`)
		p.raw(`<a href="/career/new" class="btn btn-primary">Add Career</a></div>`)
		p.render(CareersList(c, category, csrf))
		p.raw(`</section>`)
		p.render(overlay)
	})
}

// CareersList is the swappable chips and cards.
func CareersList(c *content.Careers, category, csrf string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div id="careers-list">`)
		if c.Loading {
			p.raw(`<div class="loading">Loading career opportunities...</div></div>`)
			return
		}
		if c.Err != "" && len(c.Careers) == 0 {
			p.render(ErrorPanel(c.Err, careerFilterURL(category)))
			p.raw(`</div>`)
			return
		}
		if cats := c.GetAllCategories(); len(cats) > 0 {
			p.raw(`<div class="mb-4 flex flex-wrap gap-2">`)
			p.f(`<a href="/career" class="%s">All</a>`, ChipClass(category == ""))
			for _, cat := range cats {
				p.f(`<a href="%s" class="%s">%s</a>`, careerFilterURL(cat), ChipClass(cat == category), cat)
			}
			p.raw(`</div>`)
		}
		listings := c.FilterByCategory(category)
		if len(listings) == 0 {
			emptyState(p, "No career opportunities found", "")
			p.raw(`</div>`)
			return
		}
		p.raw(`<div class="grid grid-cols-1 gap-4 md:grid-cols-2">`)
		for _, l := range listings {
			careerCard(p, l, csrf)
		}
		p.raw(`</div></div>`)
	})
}

func careerCard(p *writer, l api.CareerListing, csrf string) {
	p.raw(`<article class="card">`)
	p.f(`<div class="flex items-start justify-between"><h3 class="text-lg font-semibold"><a href="/career/%d">%s</a></h3>`, l.ID, l.Title)
	p.f(`<span class="badge">%s</span></div>`, l.Type)
	p.f(`<p class="text-sm text-slate-600">%s · %s · %s</p>`, l.Location, l.Experience, plural(l.Vacancies, "vacancy", "vacancies"))
	if len(l.Categories) > 0 {
		p.raw(`<div class="mt-2 flex flex-wrap gap-1">`)
		for _, cat := range l.Categories {
			p.f(`<span class="tag">%s</span>`, cat)
		}
		p.raw(`</div>`)
	}
	if posted := content.FormatTime(l.CreatedAt); posted != "" {
		p.f(`<p class="mt-2 text-xs text-slate-500">Posted: %s</p>`, posted)
	}
	p.f(`<div class="mt-3 flex gap-2"><a href="/career/%d/edit" class="btn btn-outline">Edit</a>`, l.ID)
	deleteButton(p, fmt.Sprintf("/career/%d", l.ID), csrf, "Are you sure you want to delete this career opportunity?")
	p.raw(`</div></article>`)
}

// CareerDetail is the read-only listing modal.
func CareerDetail(l api.CareerListing) templ.Component {
	return component(func(p *writer) {
		const closeURL = "/career"
		modal(p, "Career Opportunity Details", closeURL, func() {
			if src := richtext.SafeURL(l.Image); src != "" {
				p.f(`<img src="%s" alt="%s" class="mb-4 max-h-60 w-full rounded object-cover"/>`, src, l.Title)
			}
			p.f(`<h3 class="mb-2 text-2xl font-bold">%s</h3>`, l.Title)
			p.raw(`<h4 class="section-title">Position Details</h4><dl class="details">`)
			detailRow(p, "Job Type", l.Type)
			detailRow(p, "Vacancies", strconv.Itoa(l.Vacancies))
			detailRow(p, "Experience", l.Experience)
			detailRow(p, "Gender", genderLabel(l.Gender))
			detailRow(p, "Location", l.Location)
			detailRow(p, "Job Categories", joinLabels(l.Categories))
			detailRow(p, "Posted", content.FormatTime(l.CreatedAt))
			p.raw(`</dl>`)
			p.render(richtext.HTML(l.Details))
			p.raw(`<h4 class="section-title">External Application Details</h4>`)
			p.raw(`<p class="text-sm text-slate-600">This position uses an external application system</p>`)
			if href := richtext.SafeURL(l.ApplyLink); href != "" {
				p.f(`<a href="%s" target="_blank" rel="noopener noreferrer" class="btn btn-primary mt-2">View Application Page</a>`, href)
			}
			p.f(`<div class="mt-6 flex justify-end"><a href="/career/%d/edit" class="btn btn-outline">Edit</a></div>`, l.ID)
		})
	})
}

func detailRow(p *writer, label, value string) {
	if value == "" {
		return
	}
	p.f(`<div class="detail-row"><dt>%s</dt><dd>%s</dd></div>`, label, value)
}

func genderLabel(v string) string {
	for _, g := range content.Genders {
		if g.Value == v {
			return g.Label
		}
	}
	return v
}

// CareerModal is the add/edit career form.
func CareerModal(form CareerForm, csrf string) templ.Component {
	return component(func(p *writer) {
		const closeURL = "/career"
		title, action := "Add New Career Opportunity", "/career"
		if form.ID != 0 {
			title, action = "Edit Career Opportunity", fmt.Sprintf("/career/%d", form.ID)
		}
		d := form.Draft
		modal(p, title, closeURL, func() {
			formError(p, form.Error)
			p.f(`<form method="post" action="%s" enctype="multipart/form-data" data-busy-form novalidate>`, action)
			csrfInput(p, csrf)
			p.raw(`<p class="mb-4 text-sm text-slate-500">All fields marked with * are required.</p>`)

			p.f(`<label class="label" for="title">Title <span class="required">*</span></label><input id="title" class="input" type="text" name="title" value="%s"/>`, d.Title)
			fieldError(p, form.Fields, "title")

			p.render(CustomSelect(selectFor("type", d.Type, form.Fields)))

			p.f(`<label class="label" for="vacancies">Vacancies <span class="required">*</span></label><input id="vacancies" class="input" type="number" min="1" name="vacancies" value="%s"/>`, itoa(d.Vacancies))
			fieldError(p, form.Fields, "vacancies")

			ids := make([]string, 0, len(d.Categories))
			for _, label := range d.Categories {
				ids = append(ids, content.CategoryID(label))
			}
			ms, _ := FieldMultiSelect("categories", ids)
			p.render(MultiSelect(ms))
			fieldError(p, form.Fields, "categories")

			p.render(CustomSelect(selectFor("experience", d.Experience, form.Fields)))
			p.render(CustomSelect(selectFor("gender", d.Gender, form.Fields)))

			p.f(`<label class="label" for="location">Location <span class="required">*</span></label><input id="location" class="input" type="text" name="location" value="%s"/>`, d.Location)
			fieldError(p, form.Fields, "location")

			p.render(ImageUpload(&widget.ImageUpload{Name: "image", Label: "Image", Current: form.Image}))
			fieldError(p, form.Fields, "image")

			ed := widget.NewRichTextEditor("details", d.Details)
			ed.Label = "Complete job description and requirements"
			p.render(Editor(ed))
			fieldError(p, form.Fields, "details")

			p.f(`<label class="label" for="applyLink">Apply Link <span class="required">*</span></label><input id="applyLink" class="input" type="url" name="applyLink" value="%s" placeholder="https://"/>`, d.ApplyLink)
			fieldError(p, form.Fields, "applyLink")

			p.raw(`<p class="mt-4 text-sm text-slate-500">Please ensure all required information is provided before submitting.</p>`)
			p.f(`<div class="mt-6 flex justify-end gap-2"><a href="%s" class="btn btn-outline">Cancel</a>`, closeURL)
			p.f(`<button type="submit" class="btn btn-primary">%s</button></div></form>`, submitLabel(form.ID))
		})
	})
}

// FieldSelect builds the single select of a career form field by name.
func FieldSelect(name, value string) (*widget.CustomSelect, bool) {
	var choices []content.Choice
	var label string
	switch name {
	case "type":
		choices, label = content.JobTypes, "Job Type"
	case "experience":
		choices, label = content.ExperienceLevels, "Experience"
	case "gender":
		choices, label = content.Genders, "Gender"
	default:
		return nil, false
	}
	s := widget.NewCustomSelect(name, ChoiceOptions(choices), value)
	s.Label = label
	s.Placeholder = "Select " + strings.ToLower(label)
	s.Required = true
	return s, true
}

func selectFor(name, value string, errs content.ValidationErrors) *widget.CustomSelect {
	s, _ := FieldSelect(name, value)
	s.Error = errs.For(name)
	return s
}
