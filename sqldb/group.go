package sqldb

import (
	"errors"

	"database/sql"

	"github.com/werres/journal/core"
)

type GroupDB struct {
	*sql.DB
	get     *sql.Stmt
	getAll  *sql.Stmt
	getByID *sql.Stmt
	insert  *sql.Stmt
}

func NewGroupDB(db *sql.DB) *GroupDB {

	db.Exec(`
		CREATE TABLE IF NOT EXISTS grp (
			id INTEGER PRIMARY KEY,
			slug varchar(64) NOT NULL,
			title varchar(128) NOT NULL,
			description text NOT NULL DEFAULT '',
			UNIQUE(slug)
		);`)

	var groupDB = &GroupDB{}
	groupDB.DB = db
	groupDB.get = mustPrepare(db, "SELECT id, title, description FROM grp WHERE slug = ? LIMIT 1")
	groupDB.getAll = mustPrepare(db, "SELECT id, slug, title, description FROM grp ORDER BY title")
	groupDB.getByID = mustPrepare(db, "SELECT slug, title, description FROM grp WHERE id = ? LIMIT 1")
	groupDB.insert = mustPrepare(db, "INSERT INTO grp (slug, title, description) VALUES (?, ?, ?)")
	return groupDB
}

func (db *GroupDB) GetAllGroups() ([]*core.Group, error) {

	rows, err := db.getAll.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups = []*core.Group{}

	for rows.Next() {
		var g = &core.Group{}
		if err := rows.Scan(&g.ID, &g.Slug, &g.Title, &g.Description); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// GetGroupByID may return sql.ErrNoRows.
func (db *GroupDB) GetGroupByID(id int) (*core.Group, error) {
	var g = &core.Group{ID: id}
	return g, db.getByID.QueryRow(id).Scan(&g.Slug, &g.Title, &g.Description)
}

// GetGroupBySlug may return sql.ErrNoRows.
func (db *GroupDB) GetGroupBySlug(slug string) (*core.Group, error) {
	var g = &core.Group{Slug: slug}
	return g, db.get.QueryRow(slug).Scan(&g.ID, &g.Title, &g.Description)
}

func (db *GroupDB) InsertGroup(slug, title, description string) error {
	slug = clean(slug)
	if slug == "" {
		return errors.New("slug can't be empty")
	}
	if title == "" {
		title = slug
	}
	_, err := db.insert.Exec(slug, title, description)
	return err
}
