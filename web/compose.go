package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/werres/journal/core"
)

// shared by create and edit, distinguished by IsEdit
var composeTmpl = tmpl("posts/create_post.html", `{{ if .IsEdit }}
		<h1>Edit post</h1>
	{{ else }}
		<h1>New post</h1>
	{{ end }}

	<form method="post">

		<div class="form-group">
			<label for="text">Text</label>
			<textarea class="form-control" id="text" name="text" rows="10">{{ .Text }}</textarea>
			{{ with .Errors.Field "text" }}
				<div class="alert alert-danger mt-2">{{ . }}</div>
			{{ end }}
		</div>

		<div class="form-group">
			<label for="group">Group</label>
			<select class="form-control" id="group" name="group">
				<option value="">No group</option>
				{{ range .Groups }}
					<option value="{{ .ID }}"{{ if eq .ID $.GroupID }} selected{{ end }}>{{ .Title }}</option>
				{{ end }}
			</select>
			{{ with .Errors.Field "group" }}
				<div class="alert alert-danger mt-2">{{ . }}</div>
			{{ end }}
		</div>

		<button type="submit" class="btn btn-primary">{{ if .IsEdit }}Save{{ else }}Publish{{ end }}</button>
	</form>`)

type composeData struct {
	*context
	IsEdit  bool
	Text    string
	GroupID int // selected group, 0 means none
	Groups  []*core.Group
	Errors  core.FieldErrors
}

func createPost(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	groups, err := ctx.app.GetAllGroups()
	if err != nil {
		return err
	}

	var data = &composeData{
		context: ctx,
		Groups:  groups,
	}

	if req.Method == http.MethodPost {

		data.Text = req.PostFormValue("text")
		data.GroupID, _ = strconv.Atoi(req.PostFormValue("group")) // keep the selection when re-rendering

		input, errs := core.ValidatePostForm(data.Text, req.PostFormValue("group"), groups)
		if len(errs) == 0 {

			var groupID *int
			if input.Group != nil {
				groupID = &input.Group.ID
			}

			if _, err := ctx.app.InsertPost(input.Text, ctx.User.ID, groupID, time.Now().Unix()); err != nil {
				return err
			}

			ctx.Redirect("/profile/%s/", ctx.User.Name)
			return nil
		}

		data.Errors = errs
		// keep user input, don't redirect
	}

	return composeTmpl.Execute(w, data)
}

func editPost(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		http.NotFound(w, req)
		return nil
	}

	post, err := ctx.app.GetPost(id)
	if err != nil {
		return err
	}

	// only the author may edit, everyone else is sent to the detail page
	if ctx.User.ID != post.Author.ID {
		ctx.Redirect("/posts/%d", post.ID)
		return nil
	}

	groups, err := ctx.app.GetAllGroups()
	if err != nil {
		return err
	}

	var data = &composeData{
		context: ctx,
		IsEdit:  true,
		Text:    post.Text,
		Groups:  groups,
	}
	if post.Group != nil {
		data.GroupID = post.Group.ID
	}

	if req.Method == http.MethodPost {

		data.Text = req.PostFormValue("text")
		data.GroupID, _ = strconv.Atoi(req.PostFormValue("group"))

		input, errs := core.ValidatePostForm(data.Text, req.PostFormValue("group"), groups)
		if len(errs) == 0 {

			var groupID *int
			if input.Group != nil {
				groupID = &input.Group.ID
			}

			if err := ctx.app.UpdatePost(post.ID, input.Text, groupID); err != nil {
				return err
			}

			ctx.Redirect("/posts/%d", post.ID)
			return nil
		}

		data.Errors = errs
	}

	return composeTmpl.Execute(w, data)
}
