package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/cmsconsole/content"
)

func fieldError(p *writer, errs content.ValidationErrors, field string) {
	if msg := errs.For(field); msg != "" {
		p.f(`<p class="field-error">%s</p>`, msg)
	}
}

func formError(p *writer, msg string) {
	if msg != "" {
		p.f(`<div class="form-error" role="alert">%s</div>`, msg)
	}
}

// Login renders the sign-in card.
func Login(form LoginForm, csrf string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div class="card w-full max-w-md"><h1 class="mb-6 text-center text-2xl font-bold">Admin Panel Login</h1>`)
		formError(p, form.Error)
		p.raw(`<form method="post" action="/login" novalidate>`)
		csrfInput(p, csrf)
		p.f(`<label class="label" for="email">Email</label><input id="email" class="input" type="email" name="email" value="%s" autocomplete="username"/>`, form.Email)
		fieldError(p, form.Fields, "email")
		p.raw(`<label class="label" for="password">Password</label><input id="password" class="input" type="password" name="password" autocomplete="current-password"/>`)
		fieldError(p, form.Fields, "password")
		p.raw(`<button type="submit" class="btn btn-primary mt-4 w-full">Sign in</button></form>`)
		p.raw(`<p class="mt-4 text-center text-sm">No account? <a href="/sign-up" class="text-indigo-600 underline">Sign up</a></p></div>`)
	})
}

// Signup renders the registration card.
func Signup(form SignupForm, csrf string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div class="card w-full max-w-md"><h1 class="mb-6 text-center text-2xl font-bold">Admin Panel Signup</h1>`)
		formError(p, form.Error)
		p.raw(`<form method="post" action="/sign-up" enctype="multipart/form-data" novalidate>`)
		csrfInput(p, csrf)
		p.f(`<label class="label" for="name">Name</label><input id="name" class="input" type="text" name="name" value="%s"/>`, form.Name)
		fieldError(p, form.Fields, "name")
		p.f(`<label class="label" for="email">Email</label><input id="email" class="input" type="email" name="email" value="%s"/>`, form.Email)
		fieldError(p, form.Fields, "email")
		p.raw(`<label class="label" for="password">Password</label><input id="password" class="input" type="password" name="password" autocomplete="new-password"/>`)
		fieldError(p, form.Fields, "password")
		p.raw(`<label class="label" for="profilePicture">Profile picture</label><input id="profilePicture" class="input" type="file" name="profilePicture" accept="image/*"/>`)
		fieldError(p, form.Fields, "profilePicture")
		p.raw(`<button type="submit" class="btn btn-primary mt-4 w-full">Create account</button></form>`)
		p.raw(`<p class="mt-4 text-center text-sm">Already registered? <a href="/login" class="text-indigo-600 underline">Sign in</a></p></div>`)
	})
}
