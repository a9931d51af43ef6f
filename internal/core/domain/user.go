package domain

const (
	// RoleUser is required for designing tacos and viewing orders.
	RoleUser = "ROLE_USER"
)

// User models a registered account. Read-only from the application's
// perspective except at registration.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
	Fullname     string `db:"fullname" json:"fullname"`
	Street       string `db:"street" json:"street"`
	City         string `db:"city" json:"city"`
	State        string `db:"state" json:"state"`
	Zip          string `db:"zip" json:"zip"`
	Phone        string `db:"phone" json:"phone"`
	Roles        string `db:"roles" json:"roles"` // comma-separated role names
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	start := 0
	for i := 0; i <= len(u.Roles); i++ {
		if i == len(u.Roles) || u.Roles[i] == ',' {
			if u.Roles[start:i] == role {
				return true
			}
			start = i + 1
		}
	}
	return false
}
