// Package web serves the blog: listings, post detail, authoring and login.
package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/werres/journal/core"
)

// context carries what a handler needs for one request.
type context struct {
	*core.Request
	app *core.App
}

func middleware(app *core.App, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var ctx = &context{
			Request: app.NewRequest(w, req),
			app:     app,
		}
		defer ctx.Cleanup()

		if requireLoggedIn && !ctx.LoggedIn() {
			ctx.Redirect("/auth/login/?next=%s", url.QueryEscape(req.URL.Path))
			return
		}

		if err := f(w, req, ctx, params); err != nil {
			if core.IsNotFound(err) {
				http.NotFound(w, req)
				return
			}
			// probably no template has been executed, so execute error template
			errorTmpl.Execute(w, struct {
				*context
				Err error
			}{
				context: ctx,
				Err:     err,
			})
		}
	}
}

var errorTmpl = tmpl("error.html", `
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

// NewRouter builds the public route table.
func NewRouter(app *core.App) http.Handler {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	router.GET("/", middleware(app, false, index))
	router.GET("/group/:slug/", middleware(app, false, groupList)) // "/group/x/" works, "/group/x" redirects
	router.GET("/profile/:username/", middleware(app, false, profile))
	router.GET("/posts/:id", middleware(app, false, postDetail))
	GETAndPOST("/auth/login/", middleware(app, false, login))

	// private
	GETAndPOST("/create/", middleware(app, true, createPost))
	GETAndPOST("/posts/:id/edit/", middleware(app, true, editPost))
	router.GET("/auth/logout/", middleware(app, true, logout))

	return router
}

// tmpl parses text as a page template with the given name and binds it into the layout.
func tmpl(name, text string) *template.Template {
	var t = template.Must(layoutTmpl.Clone())
	template.Must(t.New(name).Parse(text))
	template.Must(t.Parse(`{{ define "content" }}{{ template "` + name + `" . }}{{ end }}`))
	return t
}

var layoutTmpl = template.Must(template.New("layout").Funcs(
	template.FuncMap{
		"Excerpt":  excerpt,
		"Markdown": renderMarkdown,
	},
).Parse(`<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
		<link rel="stylesheet" type="text/css" href="/static/bootstrap-4.4.1.min.css">
		<title>Journal</title>
	</head>
	<body>

		<nav class="navbar navbar-expand-md bg-light">
			<a class="navbar-brand" href="/">Journal</a>
			<ul class="navbar-nav">
				{{ if .LoggedIn }}
					<li class="nav-item">
						<a class="nav-link" href="/create/">New post</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="/profile/{{ .User.Name }}/">{{ .User.Name }}</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="/auth/logout/">Logout</a>
					</li>
				{{ else }}
					<li class="nav-item">
						<a class="nav-link" href="/auth/login/">Login</a>
					</li>
				{{ end }}
			</ul>
		</nav>

		<div class="container pt-3">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>
	</body>
</html>`))
