package sqldb

import (
	"database/sql"

	"github.com/werres/journal/core"
)

// post rows are hydrated with their author and group in one query
const selectPost = `
	SELECT post.id, post.text, post.created, usr.id, usr.name, grp.id, grp.slug, grp.title, grp.description
	FROM post
	JOIN usr ON usr.id = post.author
	LEFT JOIN grp ON grp.id = post.grp`

const orderPosts = " ORDER BY post.created DESC, post.id DESC" // id breaks ties within one second

type PostDB struct {
	*sql.DB
	get         *sql.Stmt
	getAll      *sql.Stmt
	getByAuthor *sql.Stmt
	getByGroup  *sql.Stmt
	insert      *sql.Stmt
	update      *sql.Stmt
}

func NewPostDB(db *sql.DB) *PostDB {

	db.Exec(`
		CREATE TABLE IF NOT EXISTS post (
			id INTEGER PRIMARY KEY,
			text text NOT NULL,
			author int(11) NOT NULL,
			grp int(11),
			created INTEGER NOT NULL
		);`)

	var postDB = &PostDB{}
	postDB.DB = db
	postDB.get = mustPrepare(db, selectPost+" WHERE post.id = ? LIMIT 1")
	postDB.getAll = mustPrepare(db, selectPost+orderPosts)
	postDB.getByAuthor = mustPrepare(db, selectPost+" WHERE post.author = ?"+orderPosts)
	postDB.getByGroup = mustPrepare(db, selectPost+" WHERE post.grp = ?"+orderPosts)
	postDB.insert = mustPrepare(db, "INSERT INTO post (text, author, grp, created) VALUES (?, ?, ?, ?)")
	postDB.update = mustPrepare(db, "UPDATE post SET text = ?, grp = ? WHERE id = ?")
	return postDB
}

func scanPost(scan func(...interface{}) error) (*core.Post, error) {

	var p = &core.Post{}
	var grpID sql.NullInt64
	var grpSlug, grpTitle, grpDescription sql.NullString

	if err := scan(&p.ID, &p.Text, &p.Created, &p.Author.ID, &p.Author.Name, &grpID, &grpSlug, &grpTitle, &grpDescription); err != nil {
		return nil, err
	}

	if grpID.Valid {
		p.Group = &core.Group{
			ID:          int(grpID.Int64),
			Slug:        grpSlug.String,
			Title:       grpTitle.String,
			Description: grpDescription.String,
		}
	}

	return p, nil
}

func (db *PostDB) getMultiple(stmt *sql.Stmt, args ...interface{}) ([]*core.Post, error) {

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts = []*core.Post{}

	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (db *PostDB) GetAllPosts() ([]*core.Post, error) {
	return db.getMultiple(db.getAll)
}

// GetPost may return sql.ErrNoRows.
func (db *PostDB) GetPost(id int) (*core.Post, error) {
	return scanPost(db.get.QueryRow(id).Scan)
}

func (db *PostDB) GetPostsByAuthor(authorID int) ([]*core.Post, error) {
	return db.getMultiple(db.getByAuthor, authorID)
}

func (db *PostDB) GetPostsByGroup(groupID int) ([]*core.Post, error) {
	return db.getMultiple(db.getByGroup, groupID)
}

func nullableID(id *int) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func (db *PostDB) InsertPost(text string, authorID int, groupID *int, created int64) (int, error) {
	res, err := db.insert.Exec(text, authorID, nullableID(groupID), created)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// UpdatePost replaces text and group of a post. Author and creation time are never touched.
func (db *PostDB) UpdatePost(id int, text string, groupID *int) error {
	_, err := db.update.Exec(text, nullableID(groupID), id)
	return err
}
