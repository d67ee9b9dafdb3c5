package report

import (
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines report error kinds.
type ErrorKind string

const (
	KindCredentialsNotFound ErrorKind = "credentials_not_found"
	KindInvalidCredentials  ErrorKind = "invalid_credentials"
	KindAuth                ErrorKind = "auth"
	KindMissingSheetID      ErrorKind = "missing_sheet_id"
	KindNotFound            ErrorKind = "not_found"
	KindPermissionDenied    ErrorKind = "permission_denied"
	KindWorksheetNotFound   ErrorKind = "worksheet_not_found"
	KindUnsupportedFormat   ErrorKind = "unsupported_format"
	KindInternal            ErrorKind = "internal"
)

// ReportError wraps errors with a kind.
type ReportError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *ReportError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewError creates a new report error.
func NewError(kind ErrorKind, msg string, err error) *ReportError {
	return &ReportError{Kind: kind, Msg: msg, Err: err}
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindFromError(err)
	msg := err.Error()

	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Msg != "" {
		msg = reportErr.Msg
	}

	switch kind {
	case KindMissingSheetID, KindUnsupportedFormat, KindInvalidCredentials:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode(string(kind))
	case KindAuth, KindPermissionDenied:
		return errorslib.New(msg, errorslib.CategoryAuthz).WithTextCode(string(kind))
	case KindCredentialsNotFound, KindNotFound, KindWorksheetNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode(string(kind))
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode(string(KindInternal))
	}
}

// KindFromError maps an error to its report error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Kind
	}

	return KindInternal
}
