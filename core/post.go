package core

import (
	"database/sql"
	"errors"
)

// A User is an authenticated identity. Users are created with the init
// subcommand, authentication happens against UserDB.
type User struct {
	ID   int
	Name string
}

// A Group is a named category that posts may belong to.
// Groups are created administratively and are immutable afterwards.
type Group struct {
	ID          int
	Slug        string
	Title       string
	Description string
}

// A Post is a single authored text record.
// Author and Created are set once at creation and never change.
type Post struct {
	ID      int
	Text    string
	Created int64 // unix timestamp
	Author  User
	Group   *Group // nil means no group
}

type GroupDB interface {
	GetAllGroups() ([]*Group, error)
	GetGroupByID(id int) (*Group, error)
	GetGroupBySlug(slug string) (*Group, error)
	InsertGroup(slug, title, description string) error
}

// PostDB lists posts ordered by creation time, newest first.
type PostDB interface {
	GetAllPosts() ([]*Post, error)
	GetPost(id int) (*Post, error)
	GetPostsByAuthor(authorID int) ([]*Post, error)
	GetPostsByGroup(groupID int) ([]*Post, error)
	InsertPost(text string, authorID int, groupID *int, created int64) (int, error)
	UpdatePost(id int, text string, groupID *int) error
}

type UserDB interface {
	GetUser(id int) (*User, error)
	GetUserByName(name string) (*User, error)
	InsertUser(name string) (*User, error)
	LoginUser(name, password string) (*User, error)
	SetPassword(u *User, password string) error
}

// IsNotFound reports whether err says that a record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
