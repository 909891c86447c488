package direction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDegrees(t *testing.T) {
	d, ok := FromDegrees("270")
	assert.True(t, ok)
	assert.Equal(t, Direction{Status: Value, Degrees: 270}, d)

	_, ok = FromDegrees("275")
	assert.False(t, ok, "not a multiple of ten")

	_, ok = FromDegrees("999")
	assert.False(t, ok, "out of range")
}

func TestFromCardinal(t *testing.T) {
	d, ok := FromCardinal("NE")
	assert.True(t, ok)
	assert.Equal(t, Card("NE"), d.Card)
	assert.False(t, d.True)

	d, ok = FromCardinal("N")
	assert.True(t, ok)
	assert.True(t, d.True)

	_, ok = FromCardinal("XX")
	assert.False(t, ok)
}

func TestDegreesFromCardinal(t *testing.T) {
	v, ok := DegreesFromCardinal(SW)
	assert.True(t, ok)
	assert.Equal(t, 225, v)

	_, ok = DegreesFromCardinal(Card("ZZ"))
	assert.False(t, ok)
}

func TestVariableAndOmitted(t *testing.T) {
	assert.Equal(t, Direction{Status: Variable}, FromVariable())
	assert.Equal(t, Direction{Status: Omitted}, FromOmitted())
}
