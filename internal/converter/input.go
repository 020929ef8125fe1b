package converter

import (
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/ginjaninja78/homebank-converter/internal/types"
)

// ReadInput loads an export file and decodes it from ISO-8859-1, the
// encoding both banks export in.
func ReadInput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &types.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(f))
	if err != nil {
		return "", &types.IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}
