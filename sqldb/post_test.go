package sqldb

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/werres/journal/core"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestPostOrdering(t *testing.T) {

	db := openTestDB(t)
	postDB := NewPostDB(db)
	userDB := NewUserDB(db)

	alice, err := userDB.InsertUser("alice")
	if err != nil {
		t.Fatal(err)
	}

	// insertion order differs from creation order
	for _, created := range []int64{100, 300, 200} {
		if _, err := postDB.InsertPost("post", alice.ID, nil, created); err != nil {
			t.Fatal(err)
		}
	}

	posts, err := postDB.GetAllPosts()
	if err != nil {
		t.Fatal(err)
	}

	wantIDs := []int{2, 3, 1} // created 300, 200, 100
	if len(posts) != len(wantIDs) {
		t.Fatalf("got %d posts, want %d", len(posts), len(wantIDs))
	}
	for i, p := range posts {
		if p.ID != wantIDs[i] {
			t.Errorf("position %d: got id %d, want %d", i, p.ID, wantIDs[i])
		}
	}
}

func TestPostOrderingTies(t *testing.T) {

	db := openTestDB(t)
	postDB := NewPostDB(db)
	userDB := NewUserDB(db)

	alice, err := userDB.InsertUser("alice")
	if err != nil {
		t.Fatal(err)
	}

	// same second, newest id wins
	for i := 0; i < 3; i++ {
		if _, err := postDB.InsertPost("post", alice.ID, nil, 500); err != nil {
			t.Fatal(err)
		}
	}

	posts, err := postDB.GetAllPosts()
	if err != nil {
		t.Fatal(err)
	}
	for i, wantID := range []int{3, 2, 1} {
		if posts[i].ID != wantID {
			t.Errorf("position %d: got id %d, want %d", i, posts[i].ID, wantID)
		}
	}
}

func TestPostFilters(t *testing.T) {

	db := openTestDB(t)
	postDB := NewPostDB(db)
	groupDB := NewGroupDB(db)
	userDB := NewUserDB(db)

	alice, _ := userDB.InsertUser("alice")
	bob, _ := userDB.InsertUser("bob")

	if err := groupDB.InsertGroup("go", "Go", ""); err != nil {
		t.Fatal(err)
	}
	group, err := groupDB.GetGroupBySlug("go")
	if err != nil {
		t.Fatal(err)
	}

	postDB.InsertPost("by alice, grouped", alice.ID, &group.ID, 100)
	postDB.InsertPost("by alice, ungrouped", alice.ID, nil, 200)
	postDB.InsertPost("by bob", bob.ID, nil, 300)

	byAlice, err := postDB.GetPostsByAuthor(alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byAlice) != 2 {
		t.Errorf("got %d posts by alice, want 2", len(byAlice))
	}
	for _, p := range byAlice {
		if p.Author.Name != "alice" {
			t.Errorf("got author %q, want alice", p.Author.Name)
		}
	}

	grouped, err := postDB.GetPostsByGroup(group.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(grouped) != 1 {
		t.Fatalf("got %d grouped posts, want 1", len(grouped))
	}
	if grouped[0].Group == nil || grouped[0].Group.Slug != "go" {
		t.Errorf("got group %v, want go", grouped[0].Group)
	}
}

func TestUpdatePost(t *testing.T) {

	db := openTestDB(t)
	postDB := NewPostDB(db)
	groupDB := NewGroupDB(db)
	userDB := NewUserDB(db)

	alice, _ := userDB.InsertUser("alice")
	groupDB.InsertGroup("go", "Go", "")
	group, _ := groupDB.GetGroupBySlug("go")

	id, err := postDB.InsertPost("original", alice.ID, &group.ID, 100)
	if err != nil {
		t.Fatal(err)
	}

	if err := postDB.UpdatePost(id, "changed", nil); err != nil {
		t.Fatal(err)
	}

	p, err := postDB.GetPost(id)
	if err != nil {
		t.Fatal(err)
	}
	if p.Text != "changed" {
		t.Errorf("got text %q, want %q", p.Text, "changed")
	}
	if p.Group != nil {
		t.Errorf("got group %v, want none", p.Group)
	}
	if p.Author.ID != alice.ID {
		t.Errorf("got author %d, want %d", p.Author.ID, alice.ID)
	}
	if p.Created != 100 {
		t.Errorf("got created %d, want 100", p.Created)
	}
}

func TestGetPostMissing(t *testing.T) {

	db := openTestDB(t)
	postDB := NewPostDB(db)
	NewUserDB(db)

	_, err := postDB.GetPost(42)
	if !core.IsNotFound(err) {
		t.Errorf("got %v, want a not-found error", err)
	}
}

func TestGroupDB(t *testing.T) {

	db := openTestDB(t)
	groupDB := NewGroupDB(db)

	if err := groupDB.InsertGroup(" Go ", "Go", "posts about Go"); err != nil {
		t.Fatal(err)
	}

	group, err := groupDB.GetGroupBySlug("go") // slug was cleaned on insert
	if err != nil {
		t.Fatal(err)
	}
	if group.Title != "Go" || group.Description != "posts about Go" {
		t.Errorf("got %+v", group)
	}

	if _, err := groupDB.GetGroupBySlug("missing"); !core.IsNotFound(err) {
		t.Errorf("got %v, want a not-found error", err)
	}

	if err := groupDB.InsertGroup("go", "Go again", ""); err == nil {
		t.Error("want an error for a duplicate slug")
	}
}
