package views

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PathEscape wraps url.PathEscape for use in links.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// ChipClass returns CSS classes for a filter chip, with active variant.
func ChipClass(active bool) string {
	base := "inline-flex items-center rounded-full border px-3 py-1 text-xs font-semibold transition"
	if active {
		return base + " border-indigo-600 bg-indigo-600 text-white"
	}
	return base + " border-slate-300 bg-white text-slate-700 hover:bg-slate-100"
}

func navClass(active bool) string {
	base := "flex items-center gap-3 rounded-lg p-2 transition-colors duration-200"
	if active {
		return base + " bg-indigo-50 font-semibold text-indigo-700"
	}
	return base + " hover:bg-gray-200"
}

func toastClass(kind string) string {
	if kind == "error" {
		return "toast toast-error"
	}
	return "toast toast-success"
}

func pageURL(base string, page int) string {
	return base + "?page=" + strconv.Itoa(page)
}

func careerFilterURL(category string) string {
	if category == "" {
		return "/career"
	}
	return "/career?category=" + url.QueryEscape(category)
}

func contactsURL(q, sort string, id int64) string {
	v := url.Values{}
	if q != "" {
		v.Set("q", q)
	}
	if sort != "" && sort != "recent" {
		v.Set("sort", sort)
	}
	path := "/contacts"
	if id != 0 {
		path = fmt.Sprintf("/contacts/%d", id)
	}
	if enc := v.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

func joinLabels(labels []string) string {
	return strings.Join(labels, ", ")
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
