package domain

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"` // USER | OWNER
}

func (u *User) IsOwner() bool { return u != nil && u.Role == "OWNER" }
