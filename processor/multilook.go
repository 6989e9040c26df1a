package processor

import (
	"math"

	"github.com/nci/sarprep/utils"
)

// NaN-tolerant block averaging. This is the numeric core of the whole
// pipeline: it decides which low-resolution pixels carry enough valid
// data to be trusted.

// Multilook reduces the raster resolution by averaging non-overlapping
// yscale x xscale tiles. A tile with at least minValid non-NaN samples
// (and at least one) yields the arithmetic mean of its valid samples;
// every other tile yields NaN. Trailing rows and columns that do not fill
// a complete tile are dropped, never padded. minValid is an absolute
// count in [0, xscale*yscale].
func Multilook(src *utils.Float64Raster, xscale, yscale, minValid int) (*utils.Float64Raster, error) {
	if xscale < 1 {
		return nil, &ConfigurationError{Param: "xscale", Value: xscale, Reason: "must be a positive integer"}
	}
	if yscale < 1 {
		return nil, &ConfigurationError{Param: "yscale", Value: yscale, Reason: "must be a positive integer"}
	}

	tileSize := xscale * yscale
	if minValid < 0 || minValid > tileSize {
		return nil, &ConfigurationError{Param: "minimum valid count", Value: minValid, Reason: "must be within the tile size"}
	}

	rowsLow := src.Height / yscale
	colsLow := src.Width / xscale
	out := make([]float64, rowsLow*colsLow)

	for r := 0; r < rowsLow; r++ {
		for c := 0; c < colsLow; c++ {
			sum := 0.0
			valid := 0
			for y := r * yscale; y < (r+1)*yscale; y++ {
				for x := c * xscale; x < (c+1)*xscale; x++ {
					v := src.Data[y*src.Width+x]
					if !math.IsNaN(v) {
						sum += v
						valid++
					}
				}
			}

			if valid >= minValid && valid > 0 {
				out[r*colsLow+c] = sum / float64(valid)
			} else {
				out[r*colsLow+c] = math.NaN()
			}
		}
	}

	return &utils.Float64Raster{
		NameSpace: src.NameSpace,
		Data:      out,
		Height:    rowsLow,
		Width:     colsLow,
		NoData:    math.NaN(),
	}, nil
}

// Resample is the fractional-threshold entry point over Multilook.
// thresh in [0,1] is the tolerated fraction of missing samples per tile:
// 0 demands fully valid tiles, 1 accepts any tile holding at least one
// valid sample. The mapping runs over tileSize-1 rather than tileSize so
// that an all-NaN tile is never accepted:
//
//	minValid = tileSize - floor(thresh * (tileSize - 1))
func Resample(src *utils.Float64Raster, xscale, yscale int, thresh float64) (*utils.Float64Raster, error) {
	if err := CheckThresh(thresh); err != nil {
		return nil, err
	}
	if xscale < 1 {
		return nil, &ConfigurationError{Param: "xscale", Value: xscale, Reason: "must be a positive integer"}
	}
	if yscale < 1 {
		return nil, &ConfigurationError{Param: "yscale", Value: yscale, Reason: "must be a positive integer"}
	}

	tileSize := xscale * yscale
	allowedInvalid := int(math.Floor(thresh * float64(tileSize-1)))
	return Multilook(src, xscale, yscale, tileSize-allowedInvalid)
}

// CheckThresh validates a fractional NaN-tolerance threshold.
func CheckThresh(thresh float64) error {
	if math.IsNaN(thresh) || thresh < 0 || thresh > 1 {
		return &ConfigurationError{Param: "threshold", Value: thresh, Reason: "must be within [0, 1]"}
	}
	return nil
}
