package service

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "skolmaten/internal/errors"
)

// storageError converts a repository error into the domain taxonomy:
// missing rows become ErrNotFound, everything else a StorageError.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	return domainerrors.Storage(op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
