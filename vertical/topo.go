package vertical

import "math"

// AltitudeToHeight subtracts the topography field from an altitude
// converter's output to produce height above ground.
type AltitudeToHeight struct {
	Altitude   Converter
	Topography []float64 // shape (nt,ny,nx)
	Nx, Ny     int
}

func (c *AltitudeToHeight) Levels(x, y, t int) ([]float64, error) {
	h, err := c.Altitude.Levels(x, y, t)
	if err != nil {
		return nil, err
	}
	topo := c.Topography[columnIndex(x, y, t, c.Nx, c.Ny)]
	out := make([]float64, len(h))
	for z, v := range h {
		out[z] = v - topo
	}
	return out, nil
}

func (c *AltitudeToHeight) IsValid(vVal float64, x, y, t int) bool { return !math.IsNaN(vVal) }

// HeightToAltitude adds the topography field to a height converter's
// output to produce altitude above the geoid.
type HeightToAltitude struct {
	Height     Converter
	Topography []float64 // shape (nt,ny,nx)
	Nx, Ny     int
}

func (c *HeightToAltitude) Levels(x, y, t int) ([]float64, error) {
	h, err := c.Height.Levels(x, y, t)
	if err != nil {
		return nil, err
	}
	topo := c.Topography[columnIndex(x, y, t, c.Nx, c.Ny)]
	out := make([]float64, len(h))
	for z, v := range h {
		out[z] = v + topo
	}
	return out, nil
}

func (c *HeightToAltitude) IsValid(vVal float64, x, y, t int) bool { return !math.IsNaN(vVal) }

// GeopotentialToAltitude passes a raw (t,z,y,x) geopotential-height field
// through as the column's altitude.
type GeopotentialToAltitude struct {
	Geopotential []float64 // shape (nt,nz,ny,nx)
	Nx, Ny, Nz   int
}

func (c *GeopotentialToAltitude) Levels(x, y, t int) ([]float64, error) {
	h := make([]float64, c.Nz)
	for z := 0; z < c.Nz; z++ {
		h[z] = c.Geopotential[columnIndex4(x, y, z, t, c.Nx, c.Ny, c.Nz)]
	}
	return h, nil
}

func (c *GeopotentialToAltitude) IsValid(vVal float64, x, y, t int) bool { return !math.IsNaN(vVal) }
