package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/eringen/cmsconsole/api"
)

// fakeCMS records every request it receives and answers with handler.
type fakeCMS struct {
	mu   sync.Mutex
	hits []string
}

func (f *fakeCMS) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits = append(f.hits, r.Method+" "+r.URL.RequestURI())
}

func (f *fakeCMS) Hits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.hits...)
}

func (f *fakeCMS) Count(hit string) int {
	n := 0
	for _, h := range f.Hits() {
		if h == hit {
			n++
		}
	}
	return n
}

func newFakeCMS(t *testing.T, handler http.HandlerFunc) (*fakeCMS, *api.Client) {
	t.Helper()
	f := &fakeCMS{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return f, api.New(srv.URL, "test-key")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type spyNotifier struct {
	successes []string
	errors    []string
}

func (s *spyNotifier) Success(msg string) { s.successes = append(s.successes, msg) }
func (s *spyNotifier) Error(msg string)   { s.errors = append(s.errors, msg) }

func validCareer() CareerDraft {
	return CareerDraft{
		Title:      "Backend Engineer",
		Type:       "Full-time",
		Vacancies:  2,
		Categories: []string{"Engineering"},
		Experience: "Senior",
		Gender:     "Both",
		Location:   "Dhaka",
		Details:    "<p>Build things</p>",
		ApplyLink:  "https://jobs.example.com/1",
	}
}
