package component

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

var (
	//go:embed templates/*.html
	templatesFS embed.FS

	//go:embed assets/*
	assetsFS embed.FS
)

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

func Page(vmodel PageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageTemplate.ExecuteTemplate(w, "page.html", vmodel); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

// Assets returns the static files referenced by the page.
func Assets() fs.FS {
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return assets
}
