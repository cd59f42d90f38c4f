package content

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/eringen/cmsconsole/api"
)

// Contacts is the inquiry inbox of one request. The API exposes no delete
// endpoint, so deleting only dismisses a contact from this console; the
// dismissed ids are handed back to the caller to persist.
type Contacts struct {
	base
	dismissed []int64 // oldest first

	Contacts []api.Contact
	Selected *api.Contact
	Loading  bool
	Err      string
}

// ContactStats are the summary cards above the inbox.
type ContactStats struct {
	Total     int
	Companies int
	Services  int
}

// MaxDismissed bounds the dismissed ids kept per session. Past it the
// oldest dismissal is forgotten.
const MaxDismissed = 100

// NewContacts returns an empty inbox that hides the dismissed ids.
func NewContacts(r Requester, dismissed []int64, opts ...Option) *Contacts {
	c := &Contacts{base: newBase(r, opts), Loading: true}
	for _, id := range dismissed {
		c.dismiss(id)
	}
	return c
}

func (c *Contacts) dismiss(id int64) {
	if slices.Contains(c.dismissed, id) {
		return
	}
	c.dismissed = append(c.dismissed, id)
	if n := len(c.dismissed) - MaxDismissed; n > 0 {
		c.dismissed = slices.Delete(c.dismissed, 0, n)
	}
}

// FetchContacts loads the inbox.
func (c *Contacts) FetchContacts(ctx context.Context) error {
	c.Loading = true
	c.Err = ""
	defer func() { c.Loading = false }()

	var resp api.ContactsResponse
	if err := c.api.Get(ctx, "/api/get-contacts", &resp); err != nil {
		c.Err = api.Message(err, "Failed to fetch contacts")
		c.logger.ErrorContext(ctx, "fetch contacts", slog.String("error", err.Error()))
		return err
	}
	c.Contacts = make([]api.Contact, 0, len(resp.Contacts))
	var still []int64
	for _, ct := range resp.Contacts {
		if slices.Contains(c.dismissed, ct.ID) {
			still = append(still, ct.ID)
			continue
		}
		c.Contacts = append(c.Contacts, ct)
	}
	// Ids the CMS no longer returns need no hiding.
	c.dismissed = slices.DeleteFunc(c.dismissed, func(id int64) bool {
		return !slices.Contains(still, id)
	})
	if c.Selected != nil {
		id := c.Selected.ID
		c.Selected = nil
		c.Select(id)
	}
	return nil
}

// Search returns the contacts whose name, email or company contains term,
// ignoring case. An empty term matches everything.
func (c *Contacts) Search(term string) []api.Contact {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.Contacts
	}
	var out []api.Contact
	for _, ct := range c.Contacts {
		if strings.Contains(strings.ToLower(ct.Name), term) ||
			strings.Contains(strings.ToLower(ct.Email), term) ||
			strings.Contains(strings.ToLower(ct.CompanyName), term) {
			out = append(out, ct)
		}
	}
	return out
}

// Contact sort orders.
const (
	SortRecent = "recent"
	SortName   = "name"
)

// SortContacts returns a sorted copy of list: SortName orders by name A-Z,
// anything else puts the newest inquiry first.
func SortContacts(list []api.Contact, by string) []api.Contact {
	out := slices.Clone(list)
	if by == SortName {
		slices.SortStableFunc(out, func(a, b api.Contact) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
		return out
	}
	slices.SortStableFunc(out, func(a, b api.Contact) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// Select opens the details of contact id. Selecting the open contact
// again closes it.
func (c *Contacts) Select(id int64) {
	if c.Selected != nil && c.Selected.ID == id {
		c.Selected = nil
		return
	}
	c.Selected = nil
	for i := range c.Contacts {
		if c.Contacts[i].ID == id {
			ct := c.Contacts[i]
			c.Selected = &ct
			return
		}
	}
}

// Find returns the loaded contact with id.
func (c *Contacts) Find(id int64) (api.Contact, bool) {
	for _, ct := range c.Contacts {
		if ct.ID == id {
			return ct, true
		}
	}
	return api.Contact{}, false
}

// Delete dismisses contact id. It never reaches the network.
func (c *Contacts) Delete(id int64) Result {
	c.dismiss(id)
	kept := c.Contacts[:0:0]
	for _, ct := range c.Contacts {
		if ct.ID != id {
			kept = append(kept, ct)
		}
	}
	c.Contacts = kept
	if c.Selected != nil && c.Selected.ID == id {
		c.Selected = nil
	}
	c.notify.Success("Contact removed")
	return succeeded()
}

// Dismissed lists the ids hidden from the inbox, oldest first.
func (c *Contacts) Dismissed() []int64 {
	return slices.Clone(c.dismissed)
}

// Stats summarises the loaded contacts.
func (c *Contacts) Stats() ContactStats {
	companies := make(map[string]struct{})
	var services int
	for _, ct := range c.Contacts {
		companies[ct.CompanyName] = struct{}{}
		services += len(ct.ServiceIDs)
	}
	return ContactStats{Total: len(c.Contacts), Companies: len(companies), Services: services}
}
