package identity

import "time"

// User's Password field holds a bcrypt hash, never the clear text.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Phone      string    `json:"phone,omitempty"`
	JoinedDate time.Time `json:"joinedDate"`
	Wishlist   []string  `json:"wishlist,omitempty"`
}

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Phone    string
}
