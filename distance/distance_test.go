package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMeters(t *testing.T) {
	d, ok := FromMeters("0800")
	assert.True(t, ok)
	assert.Equal(t, 800, *d.Integer)
	assert.Equal(t, Meters, d.Unit)

	d, ok = FromMeters("9999")
	assert.True(t, ok)
	assert.Equal(t, 10000, *d.Integer)
	assert.Equal(t, ">", d.Modifier)

	_, ok = FromMeters("80")
	assert.False(t, ok)
}

func TestFromMiles(t *testing.T) {
	d, ok := FromMiles("3")
	assert.True(t, ok)
	assert.Equal(t, 3, *d.Integer)

	d, ok = FromMiles("1/2")
	assert.True(t, ok)
	assert.Nil(t, d.Integer)
	assert.Equal(t, 1, *d.Numerator)
	assert.Equal(t, 2, *d.Denominator)

	d, ok = FromMiles("1 1/2")
	assert.True(t, ok)
	assert.Equal(t, 1, *d.Integer)
	assert.Equal(t, 1, *d.Numerator)
	assert.Equal(t, 2, *d.Denominator)

	d, ok = FromMiles("P6")
	assert.True(t, ok)
	assert.Equal(t, ">", d.Modifier)
	assert.Equal(t, 6, *d.Integer)
}

func TestFromHeight(t *testing.T) {
	d, ok := FromHeight("020")
	assert.True(t, ok)
	assert.Equal(t, 2000, *d.Integer)
	assert.Equal(t, Feet, d.Unit)
}

func TestFromRvr(t *testing.T) {
	d, ok := FromRvr("M0600", Meters)
	assert.True(t, ok)
	assert.Equal(t, 600, *d.Integer)
	assert.Equal(t, "<", d.Modifier)
}

func TestFromLayer(t *testing.T) {
	l, ok := FromLayer("2053")
	assert.True(t, ok)
	assert.Equal(t, 20500, l.Base)
	assert.Equal(t, 3000, l.Depth)
}

func TestCAVOK(t *testing.T) {
	d := CAVOK(Meters)
	assert.Equal(t, 10000, *d.Integer)
	d = CAVOK(StatuteMiles)
	assert.Equal(t, 6, *d.Integer)
}
