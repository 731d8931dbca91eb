package webui

import "time"

type Options struct {
	Title            string
	AdminDisplayName string
	Location         *time.Location
	DeletedRetention time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Title:            "Shared todo list",
		AdminDisplayName: "admin",
		Location:         time.UTC,
		DeletedRetention: 5 * 24 * time.Hour,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithTitle(title string) OptionFunc {
	return func(opts *Options) {
		opts.Title = title
	}
}

func WithAdminDisplayName(name string) OptionFunc {
	return func(opts *Options) {
		opts.AdminDisplayName = name
	}
}

// WithLocation sets the time zone dates are rendered in.
func WithLocation(loc *time.Location) OptionFunc {
	return func(opts *Options) {
		opts.Location = loc
	}
}

func WithDeletedRetention(retention time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.DeletedRetention = retention
	}
}
