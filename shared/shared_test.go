package shared

import (
	"testing"
	"travelease/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, ConvertStringToBool(""))
	assert.Nil(t, ConvertStringToBool("not-a-bool"))

	truthy := ConvertStringToBool("true")
	if assert.NotNil(t, truthy) {
		assert.True(t, *truthy)
	}

	falsy := ConvertStringToBool("0")
	if assert.NotNil(t, falsy) {
		assert.False(t, *falsy)
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, CalculateTotalPage(0, 10))
	assert.Equal(t, 1, CalculateTotalPage(5, 0))
	assert.Equal(t, 1, CalculateTotalPage(10, 10))
	assert.Equal(t, 2, CalculateTotalPage(11, 10))
	assert.Equal(t, 4, CalculateTotalPage(31, 10))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "hotel:get:3", BuildCacheKey("hotel:get", "3"))

	key := BuildCacheKeyWithQuery("hotel:gets", dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: "ASC"}, "miami")
	assert.Equal(t, "hotel:gets:miami:2:10:name:ASC", key)
}
