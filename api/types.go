package api

import "time"

// BlogPost mirrors the blog resource served by the CMS API.
type BlogPost struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ReadTime     int       `json:"readTime"`
	ExpertiseIDs []int     `json:"expertiseIDs"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CareerListing mirrors a job opening served by the CMS API.
type CareerListing struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Vacancies  int       `json:"vacancies"`
	Categories []string  `json:"categories"`
	Experience string    `json:"experience"`
	Gender     string    `json:"gender"`
	Location   string    `json:"location"`
	Details    string    `json:"details"`
	ApplyLink  string    `json:"applyLink"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Contact is an inquiry submitted through the public site. Read-only here.
type Contact struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	CompanyName    string    `json:"companyName"`
	CompanyWebsite string    `json:"companyWebsite"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Description    string    `json:"description"`
	ServiceIDs     []string  `json:"serviceIDs"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Pagination is the cursor block returned with paged lists.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// Envelope holds the fields every CMS response shares. Status is the
// application-level status code echoed in the body.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (e Envelope) envelope() Envelope { return e }

// OK reports whether the body status signals success. A body without a
// status field is judged by the HTTP status alone.
func (e Envelope) OK() bool {
	return e.Status == 0 || e.Status == 200 || e.Status == 201
}

// BlogsResponse is the body of GET /api/get-blogs.
type BlogsResponse struct {
	Envelope
	Blogs      []BlogPost `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// CareersResponse is the body of GET /api/get-careers.
type CareersResponse struct {
	Envelope
	Careers []CareerListing `json:"careers"`
}

// ContactsResponse is the body of GET /api/get-contacts.
type ContactsResponse struct {
	Envelope
	Contacts []Contact `json:"contacts"`
}

// LoginRequest is the JSON body of POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of POST /api/admin/login.
type LoginResponse struct {
	Envelope
	Token string `json:"token"`
}

// enveloper is implemented by every response type embedding Envelope.
type enveloper interface {
	envelope() Envelope
}
