package vertical

import (
	"math"

	"github.com/spatialmodel/gridxform/vertical/atmconst"
)

// standardPressure inverts the ICAO standard atmosphere: given a
// geopotential altitude in meters, returns pressure in Pa. Uses the
// troposphere barometric formula below the tropopause and the isothermal
// stratosphere formula above it.
func standardPressure(h float64) float64 {
	if h <= atmconst.StandardTropopauseAltitude {
		base := 1 - atmconst.StandardLapseRate*h/atmconst.StandardTemperature
		exp := atmconst.EarthGravity / (atmconst.DryAirGasConstant * atmconst.StandardLapseRate)
		return atmconst.StandardPressure * math.Pow(base, exp)
	}
	dh := h - atmconst.StandardTropopauseAltitude
	return atmconst.StandardTropopausePressure * math.Exp(-atmconst.EarthGravity*dh/
		(atmconst.DryAirGasConstant*atmconst.StandardTropopauseTemperature))
}

// standardAltitude inverts standardPressure: given pressure in Pa,
// returns geopotential altitude in meters.
func standardAltitude(p float64) float64 {
	if p >= atmconst.StandardTropopausePressure {
		exp := atmconst.DryAirGasConstant * atmconst.StandardLapseRate / atmconst.EarthGravity
		return (atmconst.StandardTemperature / atmconst.StandardLapseRate) *
			(1 - math.Pow(p/atmconst.StandardPressure, exp))
	}
	return atmconst.StandardTropopauseAltitude - (atmconst.DryAirGasConstant*atmconst.StandardTropopauseTemperature/
		atmconst.EarthGravity)*math.Log(p/atmconst.StandardTropopausePressure)
}

// LnPressureToPressure implements P(k) = P0*exp(lnP[k]). The result does
// not depend on column, so it is computed once.
type LnPressureToPressure struct {
	levels []float64
}

// NewLnPressureToPressure builds the converter from sea-level pressure
// p0 (Pa) and the native ln-pressure levels.
func NewLnPressureToPressure(p0 float64, lnP []float64) *LnPressureToPressure {
	p := make([]float64, len(lnP))
	for i, v := range lnP {
		p[i] = p0 * math.Exp(v)
	}
	return &LnPressureToPressure{levels: p}
}

func (c *LnPressureToPressure) Levels(x, y, t int) ([]float64, error) { return c.levels, nil }

func (c *LnPressureToPressure) IsValid(vVal float64, x, y, t int) bool {
	return vVal > 0 && !math.IsNaN(vVal)
}

// AltitudeStandardToPressure inverts the ICAO standard atmosphere at
// each fixed native altitude level. The result does not depend on
// column.
type AltitudeStandardToPressure struct {
	levels []float64
}

func NewAltitudeStandardToPressure(h []float64) *AltitudeStandardToPressure {
	p := make([]float64, len(h))
	for i, v := range h {
		p[i] = standardPressure(v)
	}
	return &AltitudeStandardToPressure{levels: p}
}

func (c *AltitudeStandardToPressure) Levels(x, y, t int) ([]float64, error) { return c.levels, nil }

func (c *AltitudeStandardToPressure) IsValid(vVal float64, x, y, t int) bool {
	return vVal > 0 && !math.IsNaN(vVal)
}

// PressureToStandardAltitude wraps a pressure converter and inverts the
// ICAO standard atmosphere to turn each of its physical levels into an
// altitude.
type PressureToStandardAltitude struct {
	Pressure Converter
}

func (c *PressureToStandardAltitude) Levels(x, y, t int) ([]float64, error) {
	p, err := c.Pressure.Levels(x, y, t)
	if err != nil {
		return nil, err
	}
	h := make([]float64, len(p))
	for i, v := range p {
		h[i] = standardAltitude(v)
	}
	return h, nil
}

func (c *PressureToStandardAltitude) IsValid(vVal float64, x, y, t int) bool {
	return !math.IsNaN(vVal)
}
