package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/werres/journal/core"
	"github.com/werres/journal/util"
)

// pageLinks renders bootstrap pagination items linking to ?page=n.
func pageLinks(page core.Page) []template.HTML {
	return util.PageLinks(
		page.Number,
		page.Total,
		func(p int, name string) string {
			return fmt.Sprintf(`<li class="page-item"><a class="page-link" href="?page=%d">%s</a></li>`, p, name)
		},
		func(p int, name string) string {
			return fmt.Sprintf(`<li class="page-item active"><span class="page-link">%d</span></li>`, p)
		},
	)
}

const postEntry = `
	{{ define "post-entry" }}
		<article class="card mb-3">
			<div class="card-body">
				<p>{{ Excerpt .Post.Text }}</p>
				<p class="text-muted mb-0">
					<a href="/posts/{{ .Post.ID }}">{{ .Ctx.FormatDateTime .Post.Created }}</a>
					&middot; <a href="/profile/{{ .Post.Author.Name }}/">{{ .Post.Author.Name }}</a>
					{{ with .Post.Group }}
						&middot; <a href="/group/{{ .Slug }}/">{{ .Title }}</a>
					{{ end }}
				</p>
			</div>
		</article>
	{{ end }}`

const pagination = `
	{{ define "pagination" }}
		<nav>
			<ul class="pagination justify-content-center">
				{{ range .PageLinks }}
					{{ . }}
				{{ end }}
			</ul>
		</nav>
	{{ end }}`

// listTmpl parses a listing page template together with the shared entry and pagination blocks.
func listTmpl(name, text string) *template.Template {
	return tmpl(name, text+postEntry+pagination)
}

// entry adapts a post for the "post-entry" block, which also needs the request.
type entry struct {
	Ctx  *context
	Post *core.Post
}

var indexTmpl = listTmpl("posts/index.html", `<h1>Latest posts</h1>

	{{ range .Entries }}
		{{ template "post-entry" . }}
	{{ else }}
		<p>No posts yet.</p>
	{{ end }}

	{{ template "pagination" . }}`)

type indexData struct {
	*context
	Page core.Page
}

func (data *indexData) Entries() []entry {
	var entries = make([]entry, 0, len(data.Page.Posts))
	for _, p := range data.Page.Posts {
		entries = append(entries, entry{data.context, p})
	}
	return entries
}

func (data *indexData) PageLinks() []template.HTML {
	return pageLinks(data.Page)
}

func index(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	posts, err := ctx.app.GetAllPosts()
	if err != nil {
		return err
	}

	return indexTmpl.Execute(w, &indexData{
		context: ctx,
		Page:    core.Paginate(posts, ctx.app.PostsPerPage, req.URL.Query().Get("page")),
	})
}

var groupTmpl = listTmpl("posts/group_list.html", `<h1>{{ .Group.Title }}</h1>

	{{ with .Group.Description }}
		<p class="lead">{{ . }}</p>
	{{ end }}

	{{ range .Entries }}
		{{ template "post-entry" . }}
	{{ else }}
		<p>No posts in this group yet.</p>
	{{ end }}

	{{ template "pagination" . }}`)

type groupData struct {
	indexData
	Group *core.Group
}

func groupList(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	group, err := ctx.app.GetGroupBySlug(params.ByName("slug"))
	if err != nil {
		return err // middleware turns sql.ErrNoRows into a 404
	}

	posts, err := ctx.app.GetPostsByGroup(group.ID)
	if err != nil {
		return err
	}

	return groupTmpl.Execute(w, &groupData{
		indexData: indexData{
			context: ctx,
			Page:    core.Paginate(posts, ctx.app.PostsPerPage, req.URL.Query().Get("page")),
		},
		Group: group,
	})
}

var profileTmpl = listTmpl("posts/profile.html", `<h1>Posts by {{ .Author.Name }}</h1>

	{{ range .Entries }}
		{{ template "post-entry" . }}
	{{ else }}
		<p>No posts yet.</p>
	{{ end }}

	{{ template "pagination" . }}`)

type profileData struct {
	indexData
	Author *core.User
}

func profile(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	author, err := ctx.app.GetUserByName(params.ByName("username"))
	if err != nil {
		return err
	}

	posts, err := ctx.app.GetPostsByAuthor(author.ID)
	if err != nil {
		return err
	}

	return profileTmpl.Execute(w, &profileData{
		indexData: indexData{
			context: ctx,
			Page:    core.Paginate(posts, ctx.app.PostsPerPage, req.URL.Query().Get("page")),
		},
		Author: author,
	})
}

var detailTmpl = tmpl("posts/post_detail.html", `<article>
		{{ Markdown .Post.Text }}
	</article>

	<p class="text-muted">
		{{ .FormatDateTime .Post.Created }}
		&middot; <a href="/profile/{{ .Post.Author.Name }}/">{{ .Post.Author.Name }}</a>
		{{ with .Post.Group }}
			&middot; <a href="/group/{{ .Slug }}/">{{ .Title }}</a>
		{{ end }}
	</p>

	{{ if .LoggedIn }}
		{{ if eq .User.ID .Post.Author.ID }}
			<a class="btn btn-sm btn-secondary" href="/posts/{{ .Post.ID }}/edit/">Edit</a>
		{{ end }}
	{{ end }}`)

type detailData struct {
	*context
	Post *core.Post
}

func postDetail(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		http.NotFound(w, req)
		return nil
	}

	post, err := ctx.app.GetPost(id)
	if err != nil {
		return err
	}

	return detailTmpl.Execute(w, &detailData{
		context: ctx,
		Post:    post,
	})
}
