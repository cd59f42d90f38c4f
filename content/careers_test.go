package content

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/cmsconsole/api"
)

// careerStore is an in-memory /api/*-career backend.
type careerStore struct {
	mu      sync.Mutex
	nextID  int64
	careers []api.CareerListing
}

func (s *careerStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"status": 200, "careers": s.careers})
	case r.Method == http.MethodPost:
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"status": 400, "error": err.Error()})
			return
		}
		var cats []string
		json.Unmarshal([]byte(r.FormValue("categories")), &cats)
		vacancies, _ := strconv.Atoi(r.FormValue("vacancies"))
		s.nextID++
		s.careers = append(s.careers, api.CareerListing{
			ID: s.nextID, Title: r.FormValue("title"), Type: r.FormValue("type"),
			Vacancies: vacancies, Categories: cats,
		})
		writeJSON(w, http.StatusCreated, map[string]any{"status": 201})
	default:
		writeJSON(w, http.StatusOK, map[string]any{"status": 200})
	}
}

func TestCareerCategoryRoundTrip(t *testing.T) {
	store := &careerStore{}
	cms, client := newFakeCMS(t, store.ServeHTTP)
	spy := &spyNotifier{}
	c := NewCareers(client, WithNotifier(spy))

	res := c.CreateCareer(context.Background(), validCareer())
	require.True(t, res.Success, res.Error)
	assert.Contains(t, c.GetAllCategories(), "Engineering")
	assert.Equal(t, 1, cms.Count("GET /api/get-careers"))
	assert.Equal(t, []string{"Career opportunity created successfully!"}, spy.successes)
	require.Len(t, c.Careers, 1)
	assert.Equal(t, 2, c.Careers[0].Vacancies)
}

func TestCreateCareerValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CareerDraft)
		want   string
	}{
		{"title", func(d *CareerDraft) { d.Title = " " }, "Title is required"},
		{"type", func(d *CareerDraft) { d.Type = "" }, "Job type is required"},
		{"unknown type", func(d *CareerDraft) { d.Type = "Gig" }, "Invalid job type"},
		{"vacancies", func(d *CareerDraft) { d.Vacancies = 0 }, "At least 1 vacancy is required"},
		{"categories", func(d *CareerDraft) { d.Categories = nil }, "At least one category is required"},
		{"unknown category", func(d *CareerDraft) { d.Categories = []string{"Engineering", "Astrology"} }, "Invalid job category"},
		{"blank category", func(d *CareerDraft) { d.Categories = []string{""} }, "Invalid job category"},
		{"experience", func(d *CareerDraft) { d.Experience = "" }, "Experience level is required"},
		{"unknown experience", func(d *CareerDraft) { d.Experience = "Guru" }, "Invalid experience level"},
		{"gender", func(d *CareerDraft) { d.Gender = "" }, "Gender preference is required"},
		{"location", func(d *CareerDraft) { d.Location = "" }, "Location is required"},
		{"details", func(d *CareerDraft) { d.Details = "<p> </p>" }, "Job details are required"},
		{"apply link", func(d *CareerDraft) { d.ApplyLink = "" }, "Apply link is required"},
		{"apply link scheme", func(d *CareerDraft) { d.ApplyLink = "ftp://jobs.example.com" }, "Apply link must be a valid URL"},
		{"title before location", func(d *CareerDraft) { d.Title = ""; d.Location = "" }, "Title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cms, client := newFakeCMS(t, (&careerStore{}).ServeHTTP)
			c := NewCareers(client)
			d := validCareer()
			tt.mutate(&d)

			res := c.CreateCareer(context.Background(), d)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Error)
			assert.Empty(t, cms.Hits())
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	c := NewCareers(nil)
	c.Careers = []api.CareerListing{
		{ID: 1, Categories: []string{"Engineering", "Design"}},
		{ID: 2, Categories: []string{"Sales"}},
		{ID: 3, Categories: []string{"Design", ""}},
	}

	all := c.FilterByCategory("")
	require.Len(t, all, 3)
	assert.Same(t, &c.Careers[0], &all[0])

	design := c.FilterByCategory("Design")
	require.Len(t, design, 2)
	assert.Equal(t, int64(1), design[0].ID)
	assert.Equal(t, int64(3), design[1].ID)
	assert.Empty(t, c.FilterByCategory("Finance"))

	assert.Equal(t, []string{"Engineering", "Design", "Sales"}, c.GetAllCategories())
}

func TestDeleteCareerReloadsList(t *testing.T) {
	cms, client := newFakeCMS(t, (&careerStore{}).ServeHTTP)
	c := NewCareers(client)
	res := c.DeleteCareer(context.Background(), 5)
	require.True(t, res.Success)
	assert.Equal(t, []string{"DELETE /api/delete-career/5", "GET /api/get-careers"}, cms.Hits())
}

func TestUpdateCareerEnvelopeFailure(t *testing.T) {
	cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": 404, "error": "Career not found"})
	})
	c := NewCareers(client)
	res := c.UpdateCareer(context.Background(), 77, validCareer())
	assert.False(t, res.Success)
	assert.Equal(t, "Career not found", res.Error)
	assert.Equal(t, []string{"PUT /api/update-career/77"}, cms.Hits())
}

func TestFetchCareersFailure(t *testing.T) {
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	spy := &spyNotifier{}
	c := NewCareers(client, WithNotifier(spy))
	assert.Error(t, c.FetchCareers(context.Background()))
	assert.Equal(t, "Failed to fetch career opportunities. Please try again later.", c.Err)
	assert.Len(t, spy.errors, 1)
	assert.False(t, c.Loading)
}
