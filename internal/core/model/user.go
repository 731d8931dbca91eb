package model

import "strings"

// UserID identifies either a user (by its lowercased username) or one of the
// sentinel identities.
type UserID string

const (
	// Admin is the acting identity when no share link could be resolved
	Admin UserID = "admin"
	// Public is the owner of todos assigned to no one
	Public UserID = "public"
)

// MaxUserIDLength is the maximum size, in bytes, of a user id. Owner ids are
// part of storage keys, which some backends map to file names.
const MaxUserIDLength = 64

func NewUserID(username string) UserID {
	return UserID(strings.ToLower(strings.TrimSpace(username)))
}

func (id UserID) IsPublic() bool {
	return id == Public
}

func (id UserID) TooLong() bool {
	return len(id) > MaxUserIDLength
}

func (id UserID) String() string {
	return string(id)
}
