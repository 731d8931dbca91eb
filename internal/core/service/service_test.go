package service

import (
	"time"

	aferoBlob "github.com/bornholm/todoshare/internal/adapter/blob/afero"
	"github.com/bornholm/todoshare/internal/adapter/document"
	"github.com/spf13/afero"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestRepository() *document.Repository {
	return document.NewRepository(aferoBlob.NewStore(afero.NewMemMapFs()))
}

func newTestClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}
