package models

import "time"

type SocialAccount struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Platform    string    `db:"platform" json:"platform"`
	AccountName string    `db:"account_name" json:"account_name"`
	AccessToken string    `db:"access_token" json:"-"`
	ConnectedAt time.Time `db:"connected_at" json:"connected_at"`
}

// Platforms accepted by the connect flow. The dashboard offers facebook as
// well, but the backend has never supported it; connect rejects it.
var SupportedPlatforms = []string{"instagram", "twitter", "youtube", "tiktok", "linkedin"}

func IsSupportedPlatform(platform string) bool {
	for _, p := range SupportedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}
