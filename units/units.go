// Package units centralizes the physical-unit conversion constants shared by
// the semantic value decoders, so a conversion factor is defined exactly once.
package units

const (
	// KtToMps is knots to meters per second.
	KtToMps = 0.514444
	// KtToKmh is knots to kilometers per hour.
	KtToKmh = 1.852
	// KtToMph is knots to miles per hour.
	KtToMph = 1.150779

	// InHgToHPa is inches of mercury to hectopascals.
	InHgToHPa = 33.8639
	// InHgToMmHg is inches of mercury to millimeters of mercury.
	InHgToMmHg = 25.4

	// FtToM is feet to meters.
	FtToM = 0.3048
	// MToFt is meters to feet.
	MToFt = 1 / FtToM

	// MilesToM is statute miles to meters.
	MilesToM = 1609.344

	// PressureToleranceHPa is half the smallest reported pressure increment
	// (0.1 hPa ticks in remark groups), used by is_valid comparisons instead
	// of bitwise equality.
	PressureToleranceHPa = 0.05
	// PrecipitationToleranceIn is half of the smallest reported precipitation
	// increment (0.01 in).
	PrecipitationToleranceIn = 0.005
)

// MpsFromKt converts a knots value to meters per second.
func MpsFromKt(kt float64) float64 { return kt * KtToMps }

// KmhFromKt converts a knots value to kilometers per hour.
func KmhFromKt(kt float64) float64 { return kt * KtToKmh }

// MphFromKt converts a knots value to miles per hour.
func MphFromKt(kt float64) float64 { return kt * KtToMph }

// KtFromMps converts meters per second to knots.
func KtFromMps(mps float64) float64 { return mps / KtToMps }

// KtFromKmh converts kilometers per hour to knots.
func KtFromKmh(kmh float64) float64 { return kmh / KtToKmh }

// KtFromMph converts miles per hour to knots.
func KtFromMph(mph float64) float64 { return mph / KtToMph }

// HPaFromInHg converts inches of mercury to hectopascals.
func HPaFromInHg(inHg float64) float64 { return inHg * InHgToHPa }

// MmHgFromInHg converts inches of mercury to millimeters of mercury.
func MmHgFromInHg(inHg float64) float64 { return inHg * InHgToMmHg }

// CToF converts degrees Celsius to degrees Fahrenheit.
func CToF(c float64) float64 { return c*1.8 + 32 }
