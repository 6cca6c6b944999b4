package model

type Address struct {
	ID          string `json:"id,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	City        string `json:"city,omitempty"`
	Ward        string `json:"ward,omitempty"`
	Street      string `json:"street,omitempty"`
}

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username,omitempty"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role,omitempty"`
	Addresses   []Address `json:"addresses,omitempty"`
}

// AuthResult is the payload the backend returns on login: the bearer token
// the BFF moves into an HTTP-only cookie, plus the user profile.
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	User
}
