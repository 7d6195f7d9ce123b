package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds names so they stay valid file names everywhere.
const maxAssetNameLength = 64

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Rejects empty or overlong names and names containing path separators,
// dots or NUL bytes.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxAssetNameLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxAssetNameLength)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
