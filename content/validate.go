package content

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eringen/cmsconsole/richtext"
)

// FieldError is one failed rule on a form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors lists the failed rules of a draft in field order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

// For returns the message for field, if any.
func (v ValidationErrors) For(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

var messages = map[string]string{
	"title.notblank":        "Title is required",
	"content.notblankhtml":  "Content is required",
	"readTime.min":          "Read time must be at least 1 minute",
	"type.notblank":         "Job type is required",
	"type.jobtype":          "Invalid job type",
	"vacancies.min":         "At least 1 vacancy is required",
	"categories.min":        "At least one category is required",
	"categories.category":   "Invalid job category",
	"experience.notblank":   "Experience level is required",
	"experience.experience": "Invalid experience level",
	"gender.notblank":       "Gender preference is required",
	"gender.gender":         "Invalid gender preference",
	"location.notblank":     "Location is required",
	"details.notblankhtml":  "Job details are required",
	"applyLink.notblank":    "Apply link is required",
	"applyLink.httpurl":     "Apply link must be a valid URL",
	"name.notblank":         "Name is required",
	"email.notblank":        "Email is required",
	"email.email":           "Please enter a valid email address",
	"password.required":     "Password is required",
	"password.min":          "Password must be at least 6 characters long",
	"profilePicture.image":  "Please select a valid image file",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			return f.Name
		}
		return name
	})
	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	must("notblankhtml", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(richtext.StripTags(fl.Field().String())) != ""
	})
	must("httpurl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(strings.TrimSpace(fl.Field().String()))
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
	must("jobtype", func(fl validator.FieldLevel) bool {
		return hasChoice(JobTypes, fl.Field().String())
	})
	must("experience", func(fl validator.FieldLevel) bool {
		return hasChoice(ExperienceLevels, fl.Field().String())
	})
	must("gender", func(fl validator.FieldLevel) bool {
		return hasChoice(Genders, fl.Field().String())
	})
	must("category", func(fl validator.FieldLevel) bool {
		return hasLabel(Categories, fl.Field().String())
	})
	return v
}

func check(draft any) ValidationErrors {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		// Slice elements are reported as "categories[2]".
		field, _, _ := strings.Cut(fe.Field(), "[")
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}

// ValidateBlog checks a blog draft. The result is nil when the draft is valid.
func ValidateBlog(d BlogDraft) ValidationErrors {
	return check(d)
}

// ValidateCareer checks a career draft.
func ValidateCareer(d CareerDraft) ValidationErrors {
	return check(d)
}

// ValidateCredentials checks the login form.
func ValidateCredentials(c Credentials) ValidationErrors {
	return check(c)
}

// ValidateSignup checks the registration form, including the optional
// profile picture.
func ValidateSignup(d SignupDraft) ValidationErrors {
	errs := check(d)
	if d.ProfilePicture != nil && !strings.HasPrefix(d.ProfilePicture.ContentType, "image/") {
		errs = append(errs, FieldError{Field: "profilePicture", Message: messages["profilePicture.image"]})
	}
	return errs
}
