package content

import "github.com/eringen/cmsconsole/api"

// ImageFile is an image the user picked in a form but has not uploaded yet.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f *ImageFile) part() api.FilePart {
	return api.FilePart{Filename: f.Filename, ContentType: f.ContentType, Data: f.Data}
}

// BlogDraft is the pending state of the add/edit blog modal. Field order is
// the validation order.
type BlogDraft struct {
	Title        string `form:"title" validate:"notblank"`
	Content      string `form:"content" validate:"notblankhtml"`
	ReadTime     int    `form:"readTime" validate:"min=1"`
	ExpertiseIDs []int  `form:"expertiseIDs" validate:"-"`

	Image       *ImageFile `validate:"-"`
	RemoveImage bool       `validate:"-"`
}

// DraftFromBlog seeds an edit draft from an existing post.
func DraftFromBlog(b api.BlogPost) BlogDraft {
	return BlogDraft{
		Title:        b.Title,
		Content:      b.Content,
		ReadTime:     b.ReadTime,
		ExpertiseIDs: append([]int(nil), b.ExpertiseIDs...),
	}
}

// CareerDraft is the pending state of the add/edit career modal. Field order
// is the validation order: the first failing field is reported.
type CareerDraft struct {
	Title      string   `form:"title" validate:"notblank"`
	Type       string   `form:"type" validate:"notblank,jobtype"`
	Vacancies  int      `form:"vacancies" validate:"min=1"`
	Categories []string `form:"categories" validate:"min=1,dive,category"`
	Experience string   `form:"experience" validate:"notblank,experience"`
	Gender     string   `form:"gender" validate:"notblank,gender"`
	Location   string   `form:"location" validate:"notblank"`
	Details    string   `form:"details" validate:"notblankhtml"`
	ApplyLink  string   `form:"applyLink" validate:"notblank,httpurl"`

	Image       *ImageFile `validate:"-"`
	RemoveImage bool       `validate:"-"`
}

// DraftFromCareer seeds an edit draft from an existing listing.
func DraftFromCareer(c api.CareerListing) CareerDraft {
	return CareerDraft{
		Title:      c.Title,
		Type:       c.Type,
		Vacancies:  c.Vacancies,
		Categories: append([]string(nil), c.Categories...),
		Experience: c.Experience,
		Gender:     c.Gender,
		Location:   c.Location,
		Details:    c.Details,
		ApplyLink:  c.ApplyLink,
	}
}

// Credentials is the login form.
type Credentials struct {
	Email    string `form:"email" validate:"notblank"`
	Password string `form:"password" validate:"required"`
}

// SignupDraft is the registration form.
type SignupDraft struct {
	Name     string `form:"name" validate:"notblank"`
	Email    string `form:"email" validate:"notblank,email"`
	Password string `form:"password" validate:"required,min=6"`

	ProfilePicture *ImageFile `validate:"-"`
}
