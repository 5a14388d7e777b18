package bergfex_test

import (
	"errors"
	"testing"

	"github.com/mbarbey/bergfex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := bergfex.Errorf(bergfex.ENOTFOUND, "page %q not found", "/test/")

	assert.Equal(t, bergfex.ENOTFOUND, bergfex.ErrorCode(err))
	assert.Equal(t, "page \"/test/\" not found", bergfex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bergfex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bergfex.EINTERNAL, bergfex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bergfex.ErrorMessage(nil))
}
