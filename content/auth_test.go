package content

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/cmsconsole/api"
)

func TestLoginReturnsToken(t *testing.T) {
	var got api.LoginRequest
	cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"status":200,"token":"abc"}`))
	})
	token, res := NewAuth(client).Login(context.Background(), Credentials{Email: " admin@example.com ", Password: "pw"})
	require.True(t, res.Success)
	assert.Equal(t, "abc", token)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.Equal(t, []string{"POST /api/admin/login"}, cms.Hits())
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		handler http.HandlerFunc
		want    string
		hits    int
	}{
		{"missing email", Credentials{Password: "pw"}, nil, "Email is required", 0},
		{"missing password", Credentials{Email: "a@b.co"}, nil, "Password is required", 0},
		{"rejected", Credentials{Email: "a@b.co", Password: "pw"}, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"status": 400, "message": "bad credentials"})
		}, "Invalid email or password. Please try again.", 1},
		{"no token", Credentials{Email: "a@b.co", Password: "pw"}, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":200}`))
		}, "Invalid email or password. Please try again.", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.handler
			if h == nil {
				h = func(w http.ResponseWriter, r *http.Request) {}
			}
			cms, client := newFakeCMS(t, h)
			token, res := NewAuth(client).Login(context.Background(), tt.creds)
			assert.False(t, res.Success)
			assert.Empty(t, token)
			assert.Equal(t, tt.want, res.Error)
			assert.Len(t, cms.Hits(), tt.hits)
		})
	}
}

func TestRegister(t *testing.T) {
	var name string
	cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		name = r.FormValue("name")
		writeJSON(w, http.StatusCreated, map[string]any{"status": 201})
	})
	spy := &spyNotifier{}
	res := NewAuth(client, WithNotifier(spy)).Register(context.Background(), SignupDraft{
		Name: "Ann", Email: "ann@example.com", Password: "secret1",
	})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "Ann", name)
	assert.Equal(t, []string{"POST /api/admin/register"}, cms.Hits())
	assert.Len(t, spy.successes, 1)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft SignupDraft
		want  string
	}{
		{"name", SignupDraft{Email: "a@b.co", Password: "secret1"}, "Name is required"},
		{"email", SignupDraft{Name: "A", Password: "secret1"}, "Email is required"},
		{"email format", SignupDraft{Name: "A", Email: "nope", Password: "secret1"}, "Please enter a valid email address"},
		{"password", SignupDraft{Name: "A", Email: "a@b.co"}, "Password is required"},
		{"short password", SignupDraft{Name: "A", Email: "a@b.co", Password: "12345"}, "Password must be at least 6 characters long"},
		{"picture", SignupDraft{Name: "A", Email: "a@b.co", Password: "secret1",
			ProfilePicture: &ImageFile{Filename: "cv.pdf", ContentType: "application/pdf"}}, "Please select a valid image file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cms, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {})
			res := NewAuth(client).Register(context.Background(), tt.draft)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Error)
			assert.Empty(t, cms.Hits())
		})
	}
}

func TestRegisterServerFailure(t *testing.T) {
	_, client := newFakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"status": 409, "message": "exists"})
	})
	res := NewAuth(client).Register(context.Background(), SignupDraft{Name: "A", Email: "a@b.co", Password: "secret1"})
	assert.False(t, res.Success)
	assert.Equal(t, "An error occurred during signup. Please try again.", res.Error)
}
