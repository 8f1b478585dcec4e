package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountries_Format(t *testing.T) {
	countries := Countries()
	assert.NotEmpty(t, countries)

	first := countries[0]
	assert.Equal(t, 100, first.ID)
	assert.NotEmpty(t, first.NameAscii)
	assert.Len(t, first.Codes2, 2)
	assert.True(t, first.ISDCode[0] == '+')

	// id региона выводится из id страны.
	for _, country := range countries {
		for i, region := range country.RegionSet {
			assert.Equal(t, country.ID*10+i, region.ID)
			assert.NotEmpty(t, region.NameAscii)
		}
	}
}

func TestCountries_UniqueIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, country := range Countries() {
		assert.False(t, seen[country.ID], "id страны %d повторяется", country.ID)
		seen[country.ID] = true
	}
}
