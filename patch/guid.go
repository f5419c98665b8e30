package patch

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidGUID = errors.New("invalid guid")

// GUID is a Unity asset GUID, written in scene files as 32 hex digits
// without separators.
type GUID struct {
	uuid.UUID
}

// ParseGUID accepts only the undashed form used by .meta and .unity files.
func ParseGUID(s string) (GUID, error) {
	if len(s) != 32 {
		return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("%w: %q: %v", ErrInvalidGUID, s, err)
	}
	return GUID{u}, nil
}

func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GUID) String() string {
	return hex.EncodeToString(g.UUID[:])
}
