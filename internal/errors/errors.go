package errors

import (
	stderrors "errors"
)

// Sentinel storage failures. StorageError matches them through errors.Is.
var (
	// ErrStorageUnavailable means the persistence medium rejected a write.
	ErrStorageUnavailable = stderrors.New("storage unavailable")
	// ErrStorageCorrupt means a persisted record exists but cannot be parsed.
	ErrStorageCorrupt = stderrors.New("storage corrupt")
)

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// StorageError wraps a failure of the persistence medium.
type StorageError struct {
	Op   string
	Key  string
	Kind error
	Err  error
}

// NewStorageUnavailable returns a StorageError of kind ErrStorageUnavailable.
func NewStorageUnavailable(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Kind: ErrStorageUnavailable, Err: err}
}

// NewStorageCorrupt returns a StorageError of kind ErrStorageCorrupt.
func NewStorageCorrupt(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Kind: ErrStorageCorrupt, Err: err}
}

func (e *StorageError) Error() string {
	msg := e.Op + " " + e.Key + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == e.Kind
}

// IsValidation reports whether err carries an *ErrValidation.
func IsValidation(err error) bool {
	var v *ErrValidation
	return stderrors.As(err, &v)
}
