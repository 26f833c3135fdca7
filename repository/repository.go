package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict is returned when a guarded update matched nothing because
	// the record changed state underneath it.
	ErrConflict = errors.New("record changed concurrently")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}

func now() time.Time {
	t, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	return t
}
