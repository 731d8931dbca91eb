package gorm

import "time"

type Blob struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
