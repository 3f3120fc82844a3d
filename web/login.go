package web

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var ErrLogin = errors.New("wrong username or password")

var loginTmpl = tmpl("auth/login.html", `<h1>Login</h1>
	<form method="post" style="max-width: 20rem; margin: auto;">
		<input type="hidden" name="next" value="{{ .Next }}">
		<div class="form-group">
			<label>Username</label>
			<input type="text" class="form-control" name="username" value="{{ .Username }}" required autofocus>
		</div>
		<div class="form-group">
			<label>Password</label>
			<input type="password" class="form-control" name="password" required>
		</div>
		<div class="form-group">
			<button type="submit" class="btn btn-primary" name="login">Login</button>
		</div>
	</form>`)

type loginData struct {
	*context
	Username string
	Next     string
}

func login(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var next = req.URL.Query().Get("next")
	var username string

	if req.Method == http.MethodPost {

		username = req.PostFormValue("username")
		password := req.PostFormValue("password")
		if next == "" {
			next = req.PostFormValue("next")
		}

		err := ctx.Login(username, password)
		if err == nil {
			if next == "" || next[0] != '/' { // local targets only
				next = "/"
			}
			ctx.Redirect("%s", next)
			return nil
		}
		ctx.Danger(ErrLogin)
		// keep POST data for the username field
	}

	return loginTmpl.Execute(w, &loginData{
		context:  ctx,
		Username: username,
		Next:     next,
	})
}
