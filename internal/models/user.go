package models

import "time"

// User is a row of the users table. GitHubID is zero when the account has no
// linked GitHub identity; optional text columns read back as "".
type User struct {
	ID          int64
	GitHubID    int64
	Username    string
	Email       string
	AvatarURL   string
	AccessToken string
	CreatedAt   time.Time
	LastLogin   time.Time
	Settings    string
}
