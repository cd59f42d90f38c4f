package content

import (
	"strconv"

	"github.com/eringen/cmsconsole/api"
)

// BlogCreatePayload builds the multipart body of POST /api/add-blog.
// expertiseIDs and image are only sent when present.
func BlogCreatePayload(d BlogDraft) *api.Multipart {
	m := api.NewMultipart().
		Field("title", d.Title).
		Field("content", d.Content).
		Field("readTime", strconv.Itoa(d.ReadTime))
	if len(d.ExpertiseIDs) > 0 {
		m.JSONField("expertiseIDs", d.ExpertiseIDs)
	}
	if d.Image != nil {
		m.File("image", d.Image.part())
	}
	return m
}

// BlogUpdatePayload builds the multipart body of PUT /api/update-blog/{id}.
// expertiseIDs is always sent so clearing every tag sticks.
func BlogUpdatePayload(d BlogDraft) *api.Multipart {
	ids := d.ExpertiseIDs
	if ids == nil {
		ids = []int{}
	}
	m := api.NewMultipart().
		Field("title", d.Title).
		Field("content", d.Content).
		Field("readTime", strconv.Itoa(d.ReadTime)).
		JSONField("expertiseIDs", ids)
	if d.Image != nil {
		m.File("image", d.Image.part())
	}
	if d.RemoveImage {
		m.Field("removeImage", "true")
	}
	return m
}

func careerFields(d CareerDraft) *api.Multipart {
	categories := d.Categories
	if categories == nil {
		categories = []string{}
	}
	m := api.NewMultipart().
		Field("title", d.Title).
		Field("type", d.Type).
		Field("vacancies", strconv.Itoa(d.Vacancies)).
		Field("experience", d.Experience).
		Field("gender", d.Gender).
		Field("location", d.Location).
		Field("details", d.Details).
		Field("applyLink", d.ApplyLink).
		JSONField("categories", categories)
	if d.Image != nil {
		m.File("image", d.Image.part())
	}
	return m
}

// CareerCreatePayload builds the multipart body of POST /api/add-career.
func CareerCreatePayload(d CareerDraft) *api.Multipart {
	return careerFields(d)
}

// CareerUpdatePayload builds the multipart body of PUT /api/update-career/{id}.
func CareerUpdatePayload(d CareerDraft) *api.Multipart {
	m := careerFields(d)
	if d.RemoveImage {
		m.Field("removeImage", "true")
	}
	return m
}

// SignupPayload builds the multipart body of POST /api/admin/register.
func SignupPayload(d SignupDraft) *api.Multipart {
	m := api.NewMultipart().
		Field("name", d.Name).
		Field("email", d.Email).
		Field("password", d.Password)
	if d.ProfilePicture != nil {
		m.File("profilePicture", d.ProfilePicture.part())
	}
	return m
}
