package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OpenExclFile creates a new file for writing with the condition that the file did not exist prior to this call.
//
// If name is already taken, numeric suffixes are tried ("report-1.txt", "report-2.txt", and so on) until an unused
// name is found. Caller is responsible for closing the file upon a successful return.
func OpenExclFile(name string) (file *os.File, err error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; ; {
		switch file, err = os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666); {
		case err == nil:
			return
		case errors.Is(err, os.ErrExist):
			i++
			name = fmt.Sprintf("%s-%d%s", stem, i, ext)
		default:
			return nil, fmt.Errorf("create file error: %w", err)
		}
	}
}
