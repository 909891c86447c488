package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	temp, ok := From("25")
	assert.True(t, ok)
	assert.Equal(t, 25, *temp.Value)

	temp, ok = From("M05")
	assert.True(t, ok)
	assert.Equal(t, -5, *temp.Value)

	_, ok = From("125")
	assert.False(t, ok)
}

func TestFromPrecise(t *testing.T) {
	temp, ok := FromPrecise("0056")
	assert.True(t, ok)
	assert.Equal(t, 5, *temp.Value)
	assert.Equal(t, 56, temp.Tenths)
	assert.True(t, temp.Precise)

	temp, ok = FromPrecise("1028")
	assert.True(t, ok)
	assert.Equal(t, -2, *temp.Value)
	assert.Equal(t, -28, temp.Tenths)
}

func TestToFahrenheit(t *testing.T) {
	temp, _ := From("00")
	f, ok := temp.ToFahrenheit()
	assert.True(t, ok)
	assert.Equal(t, 32.0, f)

	var zero Temperature
	_, ok = zero.ToFahrenheit()
	assert.False(t, ok)
}

func TestRelativeHumidity(t *testing.T) {
	rh := RelativeHumidity(20, 20)
	assert.InDelta(t, 100, rh, 1e-6, "equal temp and dew point is saturation")

	rh = RelativeHumidity(20, 10)
	assert.Less(t, rh, 100.0)
	assert.Greater(t, rh, 0.0)
}
