package persistence

import (
	"errors"

	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a unique-index violation. Both the
// postgres and sqlite connections are opened with TranslateError, which maps
// driver-level unique violations to gorm's sentinel.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
