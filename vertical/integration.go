package vertical

import (
	"math"

	"github.com/spatialmodel/gridxform/vertical/atmconst"
)

// virtualTemperature applies the specific-humidity correction,
// Tv = T*(1 + c*q), c = atmconst.VirtualTemperatureCoeff.
func virtualTemperature(specificHumidity, t float64) float64 {
	return t * (1 + atmconst.VirtualTemperatureCoeff*specificHumidity)
}

// layerThickness is the hydrostatic thickness of a layer between
// pLowAlti (lower altitude, higher pressure) and pHighAlti (higher
// altitude, lower pressure), given the layer's virtual temperature.
func layerThickness(pLowAlti, pHighAlti, tv float64) float64 {
	return (atmconst.DryAirGasConstant * tv / atmconst.EarthGravity) * math.Log(pLowAlti/pHighAlti)
}

// PressureIntegrationToAltitude integrates the hydrostatic equation from
// the surface through a column's pressure levels to produce altitude.
// The integration direction (surface upward or downward) is chosen per
// column by the monotonicity of the underlying pressure converter's
// output.
type PressureIntegrationToAltitude struct {
	Pressure Converter

	SurfaceAirPressure  []float64 // shape (nt,ny,nx), Pa
	SurfaceGeopotential []float64 // shape (nt,ny,nx), m^2/s^2
	AirTemperature      []float64 // shape (nt,nz,ny,nx), K
	SpecificHumidity    []float64 // optional; shape (nt,nz,ny,nx), kg/kg; nil to skip the correction

	Nx, Ny, Nz int
}

func (c *PressureIntegrationToAltitude) Levels(x, y, t int) ([]float64, error) {
	pressure, err := c.Pressure.Levels(x, y, t)
	if err != nil {
		return nil, err
	}
	nl := len(pressure)
	if nl == 0 {
		return nil, nil
	}

	l0, l1, dl := 0, nl-1, 1
	if pressure[0] < pressure[nl-1] {
		l0, l1 = l1, l0
		dl = -1
	}
	l1 += dl

	idx3 := columnIndex(x, y, t, c.Nx, c.Ny)
	pSurf := c.SurfaceAirPressure[idx3]
	a := c.SurfaceGeopotential[idx3] / atmconst.EarthGravity

	altitude := make([]float64, nl)
	for l := l0; l != l1; l += dl {
		var pLowAlti float64
		if l == l0 {
			pLowAlti = pSurf
		} else {
			pLowAlti = pressure[l-dl]
		}
		pHighAlti := pressure[l]

		idx4 := columnIndex4(x, y, l, t, c.Nx, c.Ny, c.Nz)
		tv := c.AirTemperature[idx4]
		if c.SpecificHumidity != nil {
			tv = virtualTemperature(c.SpecificHumidity[idx4], tv)
		}

		a += layerThickness(pLowAlti, pHighAlti, tv)
		altitude[l] = a
	}
	return altitude, nil
}

func (c *PressureIntegrationToAltitude) IsValid(vVal float64, x, y, t int) bool {
	return !math.IsNaN(vVal)
}
