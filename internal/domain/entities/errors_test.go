package entities

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError(t *testing.T) {
	_, cause := strconv.Atoi("abc")
	err := &LoadError{Table: "pokemon", Line: 3, Column: "HP", Err: cause}

	assert.True(t, errors.Is(err, ErrLoad))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"HP"`)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "pokemon", loadErr.Table)
}

func TestLoadError_MissingColumn(t *testing.T) {
	err := &LoadError{Table: "locations", Column: "Area", Err: errors.New("missing required column")}

	assert.Equal(t, `loading locations: column "Area": missing required column`, err.Error())
}

func TestFilterInputError(t *testing.T) {
	err := &FilterInputError{Field: "hp", Reason: "lower bound 90 exceeds upper bound 10"}

	assert.True(t, errors.Is(err, ErrFilterInput))
	assert.False(t, errors.Is(err, ErrLoad))
	assert.Equal(t, "invalid filter hp: lower bound 90 exceeds upper bound 10", err.Error())
}
