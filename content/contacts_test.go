package content

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/eringen/cmsconsole/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactsBody = `{"status":200,"contacts":[
	{"id":1,"name":"Ann Lee","email":"ann@acme.io","companyName":"Acme","serviceIDs":["web","seo"]},
	{"id":2,"name":"Bob Roy","email":"bob@globex.com","companyName":"Globex","serviceIDs":["app"]},
	{"id":3,"name":"Cy Tan","email":"cy@acme.io","companyName":"Acme"}
]}`

func contactsCMS(t *testing.T) (*fakeCMS, *Contacts) {
	cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(contactsBody))
	})
	return cms, NewContacts(client, nil)
}

func TestContactsSearch(t *testing.T) {
	_, c := contactsCMS(t)
	require.NoError(t, c.FetchContacts(context.Background()))

	assert.Len(t, c.Search(""), 3)
	assert.Len(t, c.Search("ACME"), 2)
	assert.Len(t, c.Search("globex.com"), 1)
	assert.Len(t, c.Search("ann"), 1)
	assert.Empty(t, c.Search("initech"))
}

func TestContactsStats(t *testing.T) {
	_, c := contactsCMS(t)
	require.NoError(t, c.FetchContacts(context.Background()))
	assert.Equal(t, ContactStats{Total: 3, Companies: 2, Services: 3}, c.Stats())
}

func TestContactsDeleteDismissesLocally(t *testing.T) {
	cms, c := contactsCMS(t)
	require.NoError(t, c.FetchContacts(context.Background()))
	c.Select(2)
	require.NotNil(t, c.Selected)

	res := c.Delete(2)
	assert.True(t, res.Success)
	assert.Nil(t, c.Selected)
	assert.Len(t, c.Contacts, 2)
	assert.Equal(t, []string{"GET /api/get-contacts"}, cms.Hits())
	assert.Equal(t, []int64{2}, c.Dismissed())

	// A fresh inbox built from the persisted ids keeps the contact hidden.
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(contactsBody))
	})
	next := NewContacts(client, c.Dismissed())
	require.NoError(t, next.FetchContacts(context.Background()))
	_, found := next.Find(2)
	assert.False(t, found)
}

func TestContactsDismissedIsBounded(t *testing.T) {
	_, c := contactsCMS(t)
	for id := int64(1); id <= MaxDismissed+5; id++ {
		c.Delete(id)
	}
	c.Delete(10)

	got := c.Dismissed()
	require.Len(t, got, MaxDismissed)
	assert.Equal(t, int64(6), got[0], "oldest dismissals are forgotten first")
	assert.Equal(t, int64(MaxDismissed+5), got[len(got)-1])
}

func TestContactsFetchForgetsVanishedDismissals(t *testing.T) {
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(contactsBody))
	})
	c := NewContacts(client, []int64{2, 40, 41})
	require.NoError(t, c.FetchContacts(context.Background()))

	assert.Equal(t, []int64{2}, c.Dismissed())
	assert.Len(t, c.Contacts, 2)
}

func TestContactsSelectToggles(t *testing.T) {
	_, c := contactsCMS(t)
	require.NoError(t, c.FetchContacts(context.Background()))

	c.Select(1)
	require.NotNil(t, c.Selected)
	assert.Equal(t, "Ann Lee", c.Selected.Name)
	c.Select(1)
	assert.Nil(t, c.Selected)
	c.Select(99)
	assert.Nil(t, c.Selected)
}

func TestContactsFetchFailureMessage(t *testing.T) {
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "database offline"})
	})
	c := NewContacts(client, nil)
	assert.Error(t, c.FetchContacts(context.Background()))
	assert.Equal(t, "database offline", c.Err)
	assert.False(t, c.Loading)
}

func TestSortContacts(t *testing.T) {
	now := time.Now()
	list := []api.Contact{
		{ID: 1, Name: "cy", CreatedAt: now},
		{ID: 2, Name: "Ann", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 3, Name: "bob", CreatedAt: now.Add(-time.Hour)},
	}
	ids := func(cs []api.Contact) []int64 {
		var out []int64
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 3, 2}, ids(SortContacts(list, SortRecent)))
	assert.Equal(t, []int64{2, 3, 1}, ids(SortContacts(list, SortName)))
	assert.Equal(t, []int64{1, 3, 2}, ids(SortContacts(list, "")))
	assert.Equal(t, int64(1), list[0].ID, "input must not be reordered")
}
