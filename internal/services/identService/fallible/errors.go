package fallible

import (
	"errors"
	"io/fs"

	"github.com/redjax/ident/internal/services/identService/native"
)

var (
	// ErrAbsent means the OS has no value for the requested fact: no passwd
	// entry, an unset environment variable, a missing release file.
	ErrAbsent = errors.New("value not present on this system")

	// ErrUnsupported means the fact is not meaningful or not implemented on
	// this OS family.
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrEncoding means native text could not be represented at all. The
	// converters substitute their way through malformed bytes, so this only
	// surfaces for unrepresentable lengths.
	ErrEncoding = errors.New("native text not representable")
)

// absentIfNotExist folds "file does not exist" into ErrAbsent; anything else
// stays an I/O failure.
func absentIfNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrAbsent
	}
	return err
}

// absentIfEmpty folds the buffer invoker's no-data signal into ErrAbsent.
func absentIfEmpty(err error) error {
	if errors.Is(err, native.ErrEmpty) {
		return ErrAbsent
	}
	return err
}
