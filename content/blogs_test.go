package content

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedBlogs(totalPages int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			writeJSON(w, http.StatusOK, map[string]any{
				"status": 200,
				"blogs":  []map[string]any{{"id": 42, "title": "Post", "content": "<p>x</p>", "readTime": 3}},
				"pagination": map[string]int{
					"currentPage": page, "totalPages": totalPages, "totalItems": totalPages * 20,
				},
			})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"status": 200})
		}
	}
}

func TestCreateBlogInvalidDraftMakesNoRequest(t *testing.T) {
	tests := []struct {
		name  string
		draft BlogDraft
		want  string
	}{
		{"blank title", BlogDraft{Title: "   ", Content: "<p>x</p>", ReadTime: 3}, "Title is required"},
		{"empty editor", BlogDraft{Title: "T", Content: "<p></p>", ReadTime: 3}, "Content is required"},
		{"zero read time", BlogDraft{Title: "T", Content: "<p>x</p>"}, "Read time must be at least 1 minute"},
		{"first failure wins", BlogDraft{}, "Title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cms, client := newFakeCMS(t, pagedBlogs(1))
			spy := &spyNotifier{}
			b := NewBlogs(client, WithNotifier(spy))

			res := b.CreateBlog(context.Background(), tt.draft)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Error)
			assert.Empty(t, cms.Hits())
			assert.Equal(t, []string{tt.want}, spy.errors)

			res = b.UpdateBlog(context.Background(), 1, tt.draft)
			assert.False(t, res.Success)
			assert.Empty(t, cms.Hits())
		})
	}
}

func TestFetchBlogsClampsPage(t *testing.T) {
	tests := []struct {
		name       string
		pagination map[string]int
		wantPage   int
		wantTotal  int
	}{
		{"past the end", map[string]int{"currentPage": 5, "totalPages": 2, "totalItems": 30}, 2, 2},
		{"no pages", map[string]int{"currentPage": 1, "totalPages": 0, "totalItems": 0}, 1, 1},
		{"below one", map[string]int{"currentPage": -3, "totalPages": 4, "totalItems": 70}, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{"status": 200, "blogs": []any{}, "pagination": tt.pagination})
			})
			b := NewBlogs(client)
			require.NoError(t, b.FetchBlogs(context.Background(), 5))
			assert.Equal(t, tt.wantPage, b.CurrentPage)
			assert.Equal(t, tt.wantTotal, b.TotalPages)
			assert.GreaterOrEqual(t, b.CurrentPage, 1)
			assert.LessOrEqual(t, b.CurrentPage, b.TotalPages)
		})
	}
}

func TestFetchBlogsEmptyList(t *testing.T) {
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"blogs":[],"pagination":{"currentPage":1,"totalPages":1,"totalItems":0}}`))
	})
	b := NewBlogs(client)
	assert.True(t, b.Loading)

	require.NoError(t, b.FetchBlogs(context.Background(), 1))
	assert.False(t, b.Loading)
	assert.Empty(t, b.Err)
	assert.NotNil(t, b.Blogs)
	assert.Empty(t, b.Blogs)
	assert.Equal(t, 0, b.TotalItems)
}

func TestFetchBlogsFailureKeepsPreviousList(t *testing.T) {
	var fail atomic.Bool
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
			return
		}
		pagedBlogs(1)(w, r)
	})
	spy := &spyNotifier{}
	b := NewBlogs(client, WithNotifier(spy))
	require.NoError(t, b.FetchBlogs(context.Background(), 1))
	require.Len(t, b.Blogs, 1)

	fail.Store(true)
	assert.Error(t, b.FetchBlogs(context.Background(), 1))
	assert.Len(t, b.Blogs, 1)
	assert.Equal(t, "Failed to fetch blogs. Please try again later.", b.Err)
	assert.Equal(t, []string{"Failed to fetch blogs. Please try again later."}, spy.errors)
	assert.False(t, b.Loading)
}

func TestDeleteBlogRefetchesCurrentPageOnce(t *testing.T) {
	cms, client := newFakeCMS(t, pagedBlogs(3))
	spy := &spyNotifier{}
	b := NewBlogs(client, WithNotifier(spy))
	require.NoError(t, b.FetchBlogs(context.Background(), 2))
	require.Equal(t, 2, b.CurrentPage)

	res := b.DeleteBlog(context.Background(), 42)
	require.True(t, res.Success)

	hits := cms.Hits()
	require.Len(t, hits, 3)
	assert.Equal(t, "DELETE /api/delete-blog/42", hits[1])
	assert.Equal(t, "GET /api/get-blogs?page=2&limit=20", hits[2])
	assert.Equal(t, 2, cms.Count("GET /api/get-blogs?page=2&limit=20"))
	assert.Equal(t, []string{"Blog deleted successfully!"}, spy.successes)
}

func TestCreateBlogUploadsAndReloadsFirstPage(t *testing.T) {
	var title, readTime, ids string
	cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			title = r.FormValue("title")
			readTime = r.FormValue("readTime")
			ids = r.FormValue("expertiseIDs")
			writeJSON(w, http.StatusCreated, map[string]any{"status": 201})
			return
		}
		pagedBlogs(1)(w, r)
	})
	b := NewBlogs(client)
	res := b.CreateBlog(context.Background(), BlogDraft{
		Title: "Go", Content: "<p>body</p>", ReadTime: 4, ExpertiseIDs: []int{1, 5},
	})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "Go", title)
	assert.Equal(t, "4", readTime)
	assert.Equal(t, "[1,5]", ids)
	assert.Equal(t, 1, cms.Count("GET /api/get-blogs?page=1&limit=20"))
	assert.False(t, b.Loading)
}

func TestUpdateBlogSurfacesServerMessage(t *testing.T) {
	cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"status": 400, "message": "Title already taken"})
	})
	spy := &spyNotifier{}
	b := NewBlogs(client, WithNotifier(spy))
	res := b.UpdateBlog(context.Background(), 9, BlogDraft{Title: "T", Content: "<p>x</p>", ReadTime: 1})
	assert.False(t, res.Success)
	assert.Equal(t, "Title already taken", res.Error)
	assert.False(t, res.Expired())
	assert.Equal(t, []string{"PUT /api/update-blog/9"}, cms.Hits())
	assert.Equal(t, []string{"Title already taken"}, spy.errors)
}

func TestDeleteBlogUnauthorizedIsExpired(t *testing.T) {
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	res := NewBlogs(client).DeleteBlog(context.Background(), 1)
	assert.False(t, res.Success)
	assert.True(t, res.Expired())
}

func TestBlogsFind(t *testing.T) {
	_, client := newFakeCMS(t, pagedBlogs(1))
	b := NewBlogs(client)
	require.NoError(t, b.FetchBlogs(context.Background(), 1))

	post, ok := b.Find(42)
	require.True(t, ok)
	assert.Equal(t, "Post", post.Title)
	_, ok = b.Find(7)
	assert.False(t, ok)
	assert.False(t, b.HasPrev())
	assert.False(t, b.HasNext())
}
