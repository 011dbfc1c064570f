package tool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolError(t *testing.T) {
	err := NewToolError("book_hotel", "no hotels found in atlantis", CodeLocationNotFound)
	assert.Equal(t, "book_hotel: no hotels found in atlantis", err.Error())
	assert.Equal(t, CodeLocationNotFound, ErrCode(err))
}

func TestErrCode_NonToolError(t *testing.T) {
	assert.Empty(t, ErrCode(errors.New("plain failure")))
	assert.Empty(t, ErrCode(nil))
}
