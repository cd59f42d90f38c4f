package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogCreatePayloadOmitsOptionalParts(t *testing.T) {
	m := BlogCreatePayload(BlogDraft{Title: "T", Content: "<p>c</p>", ReadTime: 5})
	assert.Equal(t, []string{"title", "content", "readTime"}, m.Names())

	v, ok := m.Value("readTime")
	require.True(t, ok)
	assert.Equal(t, "5", v)
}

func TestBlogCreatePayloadWithTagsAndImage(t *testing.T) {
	m := BlogCreatePayload(BlogDraft{
		Title: "T", Content: "c", ReadTime: 1, ExpertiseIDs: []int{2, 4},
		Image: &ImageFile{Filename: "a.png", ContentType: "image/png", Data: []byte{1}},
	})
	ids, _ := m.Value("expertiseIDs")
	assert.Equal(t, "[2,4]", ids)
	f, ok := m.FileOf("image")
	require.True(t, ok)
	assert.Equal(t, "a.png", f.Filename)
	assert.False(t, m.Has("removeImage"))
}

func TestBlogUpdatePayloadAlwaysSendsTags(t *testing.T) {
	m := BlogUpdatePayload(BlogDraft{Title: "T", Content: "c", ReadTime: 1, RemoveImage: true})
	ids, ok := m.Value("expertiseIDs")
	require.True(t, ok)
	assert.Equal(t, "[]", ids)
	remove, _ := m.Value("removeImage")
	assert.Equal(t, "true", remove)
	assert.False(t, m.Has("image"))

	m = BlogUpdatePayload(BlogDraft{Title: "T", Content: "c", ReadTime: 1})
	assert.False(t, m.Has("removeImage"))
}

func TestCareerPayloads(t *testing.T) {
	d := validCareer()
	d.RemoveImage = true

	create := CareerCreatePayload(d)
	assert.Equal(t, []string{
		"title", "type", "vacancies", "experience", "gender",
		"location", "details", "applyLink", "categories",
	}, create.Names())
	cats, _ := create.Value("categories")
	assert.Equal(t, `["Engineering"]`, cats)

	update := CareerUpdatePayload(d)
	assert.True(t, update.Has("removeImage"))

	d.Categories = nil
	cats, _ = CareerCreatePayload(d).Value("categories")
	assert.Equal(t, "[]", cats)
}

func TestSignupPayload(t *testing.T) {
	m := SignupPayload(SignupDraft{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	assert.Equal(t, []string{"name", "email", "password"}, m.Names())

	m = SignupPayload(SignupDraft{
		Name: "Ann", Email: "ann@example.com", Password: "secret1",
		ProfilePicture: &ImageFile{Filename: "me.jpg", ContentType: "image/jpeg"},
	})
	f, ok := m.FileOf("profilePicture")
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", f.ContentType)
}
