package sqldb

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"

	"github.com/werres/journal/core"
	"github.com/werres/journal/util"
)

var ErrAuth = errors.New("authentication failed")

func hash(salt string, password string) string {
	var hash = sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(hash[:])
}

type UserDB struct {
	*sql.DB
	get         *sql.Stmt
	getByName   *sql.Stmt
	insert      *sql.Stmt
	login       *sql.Stmt
	setPassword *sql.Stmt
}

func NewUserDB(db *sql.DB) *UserDB {

	db.Exec(`
		CREATE TABLE IF NOT EXISTS usr (
			id INTEGER PRIMARY KEY,
			name varchar(64) NOT NULL,
			salt varchar(64) NOT NULL DEFAULT '',
			password varchar(64) NOT NULL DEFAULT '', /* empty password field is safe because no hash value equals it */
			UNIQUE(name)
		);`)

	var userDB = &UserDB{}
	userDB.DB = db
	userDB.get = mustPrepare(db, "SELECT name FROM usr WHERE id = ? LIMIT 1")
	userDB.getByName = mustPrepare(db, "SELECT id FROM usr WHERE name = ? LIMIT 1")
	userDB.insert = mustPrepare(db, "INSERT INTO usr (name) VALUES (?)")
	userDB.login = mustPrepare(db, "SELECT id, salt, password FROM usr WHERE name = ?")
	userDB.setPassword = mustPrepare(db, "UPDATE usr SET salt = ?, password = ? WHERE id = ?")
	return userDB
}

// GetUser may return sql.ErrNoRows, because we can not compare the returned user to nil.
func (db *UserDB) GetUser(id int) (*core.User, error) {
	var u = &core.User{ID: id}
	return u, db.get.QueryRow(id).Scan(&u.Name)
}

// GetUserByName may return sql.ErrNoRows.
func (db *UserDB) GetUserByName(name string) (*core.User, error) {
	name = clean(name)
	var u = &core.User{Name: name}
	return u, db.getByName.QueryRow(name).Scan(&u.ID)
}

func (db *UserDB) InsertUser(name string) (*core.User, error) {

	name = clean(name)
	if name == "" {
		return nil, errors.New("name can't be empty")
	}

	res, err := db.insert.Exec(name)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &core.User{ID: int(id), Name: name}, nil
}

func (db *UserDB) LoginUser(name, password string) (*core.User, error) {

	name = clean(name)

	var u = &core.User{Name: name}
	var salt, pass string

	err := db.login.QueryRow(name).Scan(&u.ID, &salt, &pass)
	if err == sql.ErrNoRows {
		return nil, ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if hash(salt, password) != pass {
		return nil, ErrAuth // wrong password
	}

	return u, nil
}

func (db *UserDB) SetPassword(u *core.User, password string) error {

	if password == "" {
		return errors.New("no password given")
	}

	salt, err := util.RandomString32()
	if err != nil {
		return err
	}

	_, err = db.setPassword.Exec(salt, hash(salt, password), u.ID)
	return err
}
