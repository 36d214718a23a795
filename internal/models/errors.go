package models

import (
	"errors"
	"fmt"
)

// Domain error kinds. Handlers map these onto HTTP responses; everything else
// is reported generically.
type ErrorKind int

const (
	ErrKindUnexpected ErrorKind = iota
	ErrKindAlreadyExists
	ErrKindNotFound
	ErrKindAlreadyAssigned
	ErrKindNoJobsAssigned
	ErrKindDateRangeInvalid
	ErrKindUnresolvedAssignee
	ErrKindUnsupportedFileType
	ErrKindEmptyFile
	ErrKindInvalidInput
)

type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ErrAlreadyExists(jobID string) *DomainError {
	return NewDomainError(ErrKindAlreadyExists, "Requirements Already Exists with Job Id : %s", jobID)
}

func ErrRequirementNotFound(jobID string) *DomainError {
	return NewDomainError(ErrKindNotFound, "Requirement Not Found with Id : %s", jobID)
}

func ErrAlreadyAssigned(jobID string) *DomainError {
	return NewDomainError(ErrKindAlreadyAssigned, "Requirement Already Assigned to Recruiter for Job Id : %s", jobID)
}

func ErrNoJobsAssigned(msg string) *DomainError {
	return NewDomainError(ErrKindNoJobsAssigned, "%s", msg)
}

func ErrDateRangeInvalid(msg string) *DomainError {
	return NewDomainError(ErrKindDateRangeInvalid, "%s", msg)
}

func ErrUnresolvedAssignee(userID string) *DomainError {
	return NewDomainError(ErrKindUnresolvedAssignee, "User ID '%s' not found.", userID)
}

func ErrUnsupportedFileType(ext string) *DomainError {
	return NewDomainError(ErrKindUnsupportedFileType, "Unsupported file type: %s", ext)
}

func ErrEmptyFile() *DomainError {
	return NewDomainError(ErrKindEmptyFile, "File is empty.")
}

// KindOf reports the domain kind of err, or ErrKindUnexpected for anything
// outside the taxonomy.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrKindUnexpected
}
