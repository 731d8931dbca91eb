package model

import "time"

// ShareLink grants a scoped view of the todo lists and an acting identity to
// anyone knowing its token. The token is the key of the share links table and
// is not serialized in the entry itself.
type ShareLink struct {
	Token     string    `json:"-"`
	Username  UserID    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ShareLinks maps tokens to their share link.
type ShareLinks map[string]ShareLink
