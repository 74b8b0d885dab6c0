package user

import "coursecat/model"

// Profile is the self-fetch projection: identity fields only, no password
// hash and no timestamps.
type Profile struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func profileFrom(u *model.User) Profile {
	return Profile{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
