package views

import (
	"github.com/eringen/cmsconsole/activity"
	"github.com/eringen/cmsconsole/content"
)

// Page carries the per-request chrome every screen needs.
type Page struct {
	Title   string
	Active  string // sidebar entry: dashboard, blogs, career, contacts
	Email   string // signed-in admin
	CSRF    string
	Flashes []Flash
}

// Flash is a toast queued by a handler or a service.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// LoginForm is the state of the sign-in screen.
type LoginForm struct {
	Email  string
	Error  string
	Fields content.ValidationErrors
}

// SignupForm is the state of the registration screen.
type SignupForm struct {
	Name   string
	Email  string
	Error  string
	Fields content.ValidationErrors
}

// BlogForm is the add/edit blog modal. ID is zero for a new post.
type BlogForm struct {
	ID     int64
	Page   int // list page to return to
	Draft  content.BlogDraft
	Image  string // URL of the stored image
	Error  string
	Fields content.ValidationErrors
}

// CareerForm is the add/edit career modal. ID is zero for a new listing.
type CareerForm struct {
	ID     int64
	Draft  content.CareerDraft
	Image  string
	Error  string
	Fields content.ValidationErrors
}

// DashboardStats are the counters on the dashboard cards.
type DashboardStats struct {
	Blogs    int
	Careers  int
	Contacts int
}

// Dashboard is the landing screen after sign-in.
type Dashboard struct {
	Stats  DashboardStats
	Err    string
	Recent []activity.Entry
}

// ContactsView is the inbox screen state beyond what the service holds.
type ContactsView struct {
	Query string
	Sort  string
}
