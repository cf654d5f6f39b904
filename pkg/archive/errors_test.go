package archive

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateStatus(t *testing.T) {
	assert.NoError(t, translateStatus("/series/{id}", http.StatusOK))
	assert.NoError(t, translateStatus("/instances", http.StatusCreated))

	assert.ErrorIs(t, translateStatus("/series/{id}", http.StatusNotFound), ErrNotFound)
	assert.ErrorIs(t, translateStatus("/series/{id}/metadata/{key}", http.StatusConflict), ErrConflict)
	assert.ErrorIs(t, translateStatus("/series/{id}/metadata/{key}", http.StatusPreconditionFailed), ErrConflict)

	err := translateStatus("/tools/find", http.StatusBadGateway)
	var se *StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Equal(t, "/tools/find", se.Route)
}

func TestIsEncodingRejection(t *testing.T) {
	assert.True(t, IsEncodingRejection(&StatusError{StatusCode: http.StatusBadRequest}))
	assert.True(t, IsEncodingRejection(&StatusError{StatusCode: http.StatusUnsupportedMediaType}))
	assert.True(t, IsEncodingRejection(fmt.Errorf("put: %w", &StatusError{StatusCode: http.StatusBadRequest})))

	assert.False(t, IsEncodingRejection(&StatusError{StatusCode: http.StatusBadGateway}))
	assert.False(t, IsEncodingRejection(fmt.Errorf("x: %w", ErrConflict)))
	assert.False(t, IsEncodingRejection(nil))
}
