package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrKindAlreadyExists, KindOf(ErrAlreadyExists("JOB-1")))
	assert.Equal(t, ErrKindNotFound, KindOf(ErrRequirementNotFound("JOB-1")))
	assert.Equal(t, ErrKindUnexpected, KindOf(errors.New("boom")))
	assert.Equal(t, ErrKindUnexpected, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading requirement: %w", ErrAlreadyAssigned("JOB-9"))
	assert.Equal(t, ErrKindAlreadyAssigned, KindOf(wrapped))
}

func TestDomainErrorMessages(t *testing.T) {
	assert.Equal(t, "Requirements Already Exists with Job Id : JOB-7", ErrAlreadyExists("JOB-7").Error())
	assert.Equal(t, "User ID 'U42' not found.", ErrUnresolvedAssignee("U42").Error())
	assert.Equal(t, "File is empty.", ErrEmptyFile().Error())
}
