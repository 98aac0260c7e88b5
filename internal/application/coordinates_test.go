package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	coords, err := NewCoordinates(52.2297, 21.0122)

	require.NoError(t, err)
	assert.Equal(t, 52.2297, coords.Latitude)
	assert.Equal(t, 21.0122, coords.Longitude)
}

func TestNewCoordinatesOutOfRange(t *testing.T) {
	_, err := NewCoordinates(91, 0)
	assert.Error(t, err)

	_, err = NewCoordinates(-91, 0)
	assert.Error(t, err)

	_, err = NewCoordinates(0, 181)
	assert.Error(t, err)

	_, err = NewCoordinates(0, -181)
	assert.Error(t, err)
}
