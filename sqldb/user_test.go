package sqldb

import (
	"testing"

	"github.com/werres/journal/core"
)

func TestUserLogin(t *testing.T) {

	db := openTestDB(t)
	userDB := NewUserDB(db)

	alice, err := userDB.InsertUser(" Alice ") // names are cleaned
	if err != nil {
		t.Fatal(err)
	}
	if alice.Name != "alice" {
		t.Errorf("got name %q, want alice", alice.Name)
	}

	if err := userDB.SetPassword(alice, "secret"); err != nil {
		t.Fatal(err)
	}

	u, err := userDB.LoginUser("alice", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != alice.ID {
		t.Errorf("got id %d, want %d", u.ID, alice.ID)
	}

	if _, err := userDB.LoginUser("alice", "wrong"); err != ErrAuth {
		t.Errorf("got %v, want ErrAuth", err)
	}
	if _, err := userDB.LoginUser("nobody", "secret"); err != ErrAuth {
		t.Errorf("got %v, want ErrAuth", err)
	}

	// a user without a password can never log in
	bob, err := userDB.InsertUser("bob")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := userDB.LoginUser(bob.Name, ""); err != ErrAuth {
		t.Errorf("got %v, want ErrAuth", err)
	}

	if _, err := userDB.GetUserByName("bob"); err != nil {
		t.Errorf("got %v, want bob", err)
	}
	if _, err := userDB.GetUserByName("ghost"); !core.IsNotFound(err) {
		t.Errorf("got %v, want a not-found error", err)
	}
}
