package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type (
	User struct {
		ID       int
		Username string
		Email    string
		Role     string
		Name     string
		Address  *Address
		Phone    string
	}

	// SeedUser is a User together with the plaintext demo password
	// from the seed fixture. The password never leaves the auth store.
	SeedUser struct {
		User
		Password string
	}

	Address struct {
		Street  string
		City    string
		State   string
		ZipCode string
		Country string
	}
)

// UserPatch carries optional fields for a shallow profile merge.
type UserPatch struct {
	Email   *string
	Name    *string
	Address *Address
	Phone   *string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
