package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat(1.5))
	assert.Equal(t, 3.0, ToFloat(3))
	assert.Equal(t, 120.0, ToFloat("120"))
	assert.Equal(t, 2.5, ToFloat(" 2.5 "))
	assert.Equal(t, 0.0, ToFloat("plenty"))
	assert.Equal(t, 0.0, ToFloat(nil))
	assert.Equal(t, 0.0, ToFloat(map[string]interface{}{}))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Banana", TitleCase("banana"))
	assert.Equal(t, "Butter Chicken", TitleCase("BUTTER CHICKEN"))
	assert.Equal(t, "Masala Dosa", TitleCase("  masala   dosa "))
	assert.Equal(t, "Éclair", TitleCase("éclair"))
	assert.Equal(t, "Crème Brûlée", TitleCase("crème brûlée"))
	assert.Equal(t, "", TitleCase("   "))
}
