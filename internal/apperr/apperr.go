// Package apperr carries the error taxonomy shared by the store, the
// services and the HTTP surface: validation failures, missing rows,
// storage faults and malformed caller input are distinguishable with
// errors.As without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindStorage
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "store.SaveProfile"
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Err.Error())
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

func NotFoundf(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Op: op, Err: fmt.Errorf(format, args...)}
}

func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

func Parsef(format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Err: fmt.Errorf(format, args...)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsStorage(err error) bool    { return KindOf(err) == KindStorage }
func IsParse(err error) bool      { return KindOf(err) == KindParse }
