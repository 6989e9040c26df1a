package utils

import (
	"math"
)

// GeoTransform is the affine mapping from pixel/line indices to
// georeferenced coordinates: (x0, xstep, 0, y0, 0, ystep). All grids
// handled here are north-up, so both rotation terms are zero, xstep is
// positive and ystep is negative.
type GeoTransform [6]float64

func (gt GeoTransform) OriginX() float64 {
	return gt[0]
}

func (gt GeoTransform) XStep() float64 {
	return gt[1]
}

func (gt GeoTransform) OriginY() float64 {
	return gt[3]
}

func (gt GeoTransform) YStep() float64 {
	return gt[5]
}

// Equal reports whether two geotransforms describe the same grid origin
// and resolution within tol in each coefficient.
func (gt GeoTransform) Equal(other GeoTransform, tol float64) bool {
	for i := range gt {
		if math.Abs(gt[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

// Float64Raster is a single band of samples in row-major order. All
// raster data moves through the pipeline as float64 so that NaN can
// stand in for missing samples regardless of the on-disk type.
type Float64Raster struct {
	NameSpace     string
	Data          []float64
	Height, Width int
	NoData        float64
}

// Copy returns a deep copy of the raster.
func (r *Float64Raster) Copy() *Float64Raster {
	data := make([]float64, len(r.Data))
	copy(data, r.Data)
	return &Float64Raster{NameSpace: r.NameSpace, Data: data, Height: r.Height, Width: r.Width, NoData: r.NoData}
}

// ToNaN rewrites every sample equal to the raster's nodata marker as NaN
// so that downstream averaging treats missing data uniformly.
func (r *Float64Raster) ToNaN() {
	if math.IsNaN(r.NoData) {
		return
	}
	for i, v := range r.Data {
		if v == r.NoData {
			r.Data[i] = math.NaN()
		}
	}
}
