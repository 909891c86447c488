package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedConversions(t *testing.T) {
	assert.InDelta(t, 10.28888, MpsFromKt(20), 1e-4)
	assert.InDelta(t, 37.04, KmhFromKt(20), 1e-2)
	assert.InDelta(t, 23.01558, MphFromKt(20), 1e-4)
	assert.InDelta(t, 20, KtFromMps(MpsFromKt(20)), 1e-9)
	assert.InDelta(t, 20, KtFromKmh(KmhFromKt(20)), 1e-9)
	assert.InDelta(t, 20, KtFromMph(MphFromKt(20)), 1e-9)
}

func TestPressureConversions(t *testing.T) {
	assert.InDelta(t, 1013.25, HPaFromInHg(29.92), 0.1)
	assert.InDelta(t, 759.9, MmHgFromInHg(29.92), 0.1)
}

func TestCToF(t *testing.T) {
	assert.Equal(t, 32.0, CToF(0))
	assert.Equal(t, 212.0, CToF(100))
	assert.Equal(t, -40.0, CToF(-40))
}
