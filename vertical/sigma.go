package vertical

import "math"

// SigmaToPressure implements P(k) = Ptop + sigma[k]*(Ps(x,y,t) - Ptop).
type SigmaToPressure struct {
	Ptop   float64
	Sigma  []float64
	Ps     []float64 // shape (nt,ny,nx)
	Nx, Ny int
}

func (c *SigmaToPressure) Levels(x, y, t int) ([]float64, error) {
	ps := c.Ps[columnIndex(x, y, t, c.Nx, c.Ny)]
	p := make([]float64, len(c.Sigma))
	for k, s := range c.Sigma {
		p[k] = c.Ptop + s*(ps-c.Ptop)
	}
	return p, nil
}

func (c *SigmaToPressure) IsValid(vVal float64, x, y, t int) bool {
	return vVal > 0 && !math.IsNaN(vVal)
}

// HybridSigmaToPressure implements P(k) = A[k]*P0 + B[k]*Ps(x,y,t).
type HybridSigmaToPressure struct {
	P0     float64
	A, B   []float64
	Ps     []float64 // shape (nt,ny,nx)
	Nx, Ny int
}

func (c *HybridSigmaToPressure) Levels(x, y, t int) ([]float64, error) {
	if err := checkLen("B", len(c.B), len(c.A)); err != nil {
		return nil, err
	}
	ps := c.Ps[columnIndex(x, y, t, c.Nx, c.Ny)]
	p := make([]float64, len(c.A))
	for k := range c.A {
		p[k] = c.A[k]*c.P0 + c.B[k]*ps
	}
	return p, nil
}

func (c *HybridSigmaToPressure) IsValid(vVal float64, x, y, t int) bool {
	return vVal > 0 && !math.IsNaN(vVal)
}

// HybridSigmaApToPressure implements P(k) = AP[k] + B[k]*Ps(x,y,t),
// where AP carries units of Pa directly.
type HybridSigmaApToPressure struct {
	Ap, B  []float64
	Ps     []float64 // shape (nt,ny,nx)
	Nx, Ny int
}

func (c *HybridSigmaApToPressure) Levels(x, y, t int) ([]float64, error) {
	if err := checkLen("B", len(c.B), len(c.Ap)); err != nil {
		return nil, err
	}
	ps := c.Ps[columnIndex(x, y, t, c.Nx, c.Ny)]
	p := make([]float64, len(c.Ap))
	for k := range c.Ap {
		p[k] = c.Ap[k] + c.B[k]*ps
	}
	return p, nil
}

func (c *HybridSigmaApToPressure) IsValid(vVal float64, x, y, t int) bool {
	return vVal > 0 && !math.IsNaN(vVal)
}
