// Package atmconst names the physical constants shared by the vertical
// converter family. Values follow the ICAO standard atmosphere and the
// U.S. Standard Atmosphere 1976 troposphere model.
package atmconst

const (
	// EarthGravity is the standard gravitational acceleration, m/s^2.
	EarthGravity = 9.80665

	// DryAirGasConstant is the specific gas constant for dry air, J/(kg*K).
	DryAirGasConstant = 287.05287

	// StandardPressure is sea-level standard pressure, Pa.
	StandardPressure = 101325.0

	// StandardTemperature is sea-level standard temperature, K.
	StandardTemperature = 288.15

	// StandardLapseRate is the tropospheric temperature lapse rate, K/m,
	// valid up to StandardTropopauseAltitude.
	StandardLapseRate = 0.0065

	// StandardTropopauseAltitude is the top of the lapse-rate layer, m.
	StandardTropopauseAltitude = 11000.0

	// StandardTropopausePressure is pressure at StandardTropopauseAltitude, Pa.
	StandardTropopausePressure = 22632.0

	// StandardTropopauseTemperature is the isothermal stratosphere
	// temperature immediately above the tropopause, K.
	StandardTropopauseTemperature = 216.65

	// VirtualTemperatureCoeff is the coefficient relating specific
	// humidity to the virtual-temperature correction: Tv = T*(1+c*q).
	VirtualTemperatureCoeff = 0.608
)
