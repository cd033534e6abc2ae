package domain

// User is a credential record fetched from the data service. Password holds
// the bcrypt hash of the user's password, never the plaintext.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is a user stripped of credential material, safe to return to
// callers and embed in session tokens.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the credential-free view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
