package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlace_Valid(t *testing.T) {
	p, err := NewPlace("Cozy loft", "Nice view", 120.5, 48.85, 2.35, "owner-1")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Cozy loft", p.Title)
	assert.Equal(t, 120.5, p.Price)
	assert.Equal(t, "owner-1", p.OwnerID)
}

func TestNewPlace_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		price    float64
		lat, lon float64
		owner    string
		field    string
	}{
		{"empty title", "", 10, 0, 0, "o", "title"},
		{"blank title", "  ", 10, 0, 0, "o", "title"},
		{"long title", strings.Repeat("x", 101), 10, 0, 0, "o", "title"},
		{"negative price", "T", -0.01, 0, 0, "o", "price"},
		{"latitude too low", "T", 10, -90.5, 0, "o", "latitude"},
		{"latitude too high", "T", 10, 90.5, 0, "o", "latitude"},
		{"longitude too low", "T", 10, 0, -180.5, "o", "longitude"},
		{"longitude too high", "T", 10, 0, 180.5, "o", "longitude"},
		{"missing owner", "T", 10, 0, 0, "", "owner_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlace(tc.title, "", tc.price, tc.lat, tc.lon, tc.owner)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestNewPlace_BoundaryCoordinates(t *testing.T) {
	for _, c := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
		_, err := NewPlace("T", "", 0, c[0], c[1], "o")
		assert.NoError(t, err)
	}
}

func TestPlacePatch_Apply(t *testing.T) {
	p, err := NewPlace("Old", "", 10, 0, 0, "o")
	require.NoError(t, err)

	title := "New"
	price := 20.0
	require.NoError(t, PlacePatch{Title: &title, Price: &price}.Apply(p))
	assert.Equal(t, "New", p.Title)
	assert.Equal(t, 20.0, p.Price)
	assert.Equal(t, 0.0, p.Latitude)

	bad := -1.0
	assert.Error(t, PlacePatch{Price: &bad}.Apply(p))
}
