package core

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

const DefaultPostsPerPage = 10

// An App bundles the entity stores and the session manager.
// Populate the store fields, then call Init.
type App struct {
	GroupDB
	PostDB
	UserDB
	SessionManager *scs.SessionManager

	PostsPerPage int // posts per listing page, DefaultPostsPerPage if unset
}

// Init sets up the session manager. A nil sessionStore keeps sessions in memory.
func (a *App) Init(sessionStore scs.Store, cookiePath string) {

	if a.PostsPerPage <= 0 {
		a.PostsPerPage = DefaultPostsPerPage
	}

	a.SessionManager = scs.New()
	if sessionStore != nil {
		a.SessionManager.Store = sessionStore
	}
	a.SessionManager.Cookie.Path = cookiePath + "/"         // 'The default value is "/". Passing the empty string "" will result in it being set to the path that the cookie was issued from.'
	a.SessionManager.Cookie.Persist = false                 // don't store the cookie across browser sessions, required for GDPR cookie consent exemption criterion B
	a.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	a.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	a.SessionManager.IdleTimeout = 12 * time.Hour
	a.SessionManager.Lifetime = 720 * time.Hour
}
