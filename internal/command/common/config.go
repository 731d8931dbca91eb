package common

import (
	"io"
	"text/tabwriter"

	"github.com/bornholm/todoshare/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// GetConfig parses the server configuration from the environment, so that
// commands operate on the same store as the server.
func GetConfig(cCtx *cli.Context) (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}

	return conf, nil
}

func NewTableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
