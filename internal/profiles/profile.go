package profiles

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	AvatarURL *string   `json:"avatarUrl"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName is the name if set, the email otherwise.
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Email
}

type UpdateRequest struct {
	Name string `json:"name" validate:"max=80"`
}
