package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

const ShareTokenSize = 4

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.New("unexpected number of read bytes")
	}

	return data, nil
}

// GenerateShareToken generates a short random token made of 8 lowercase
// hexadecimal characters, suitable for use as a single URL path segment.
func GenerateShareToken() (string, error) {
	bytes, err := RandomBytes(ShareTokenSize)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(bytes), nil
}
