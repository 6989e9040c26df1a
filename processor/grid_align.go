package processor

import (
	"math"

	"github.com/nci/sarprep/utils"
)

// AlignmentTol scales the pixel step into the maximum distance a custom
// crop boundary may sit from an exact grid line. Deliberately strict:
// cropping to extents off the native grid silently shifts every output
// pixel, so even small fractional-pixel offsets are rejected.
const AlignmentTol = 1e-6

// ValidateAlignment checks that each of the four custom boundary
// coordinates is an integer number of pixel steps from the reference grid
// origin. The first failing boundary is reported with its residual
// offset.
func ValidateAlignment(exts Extents, geot utils.GeoTransform) error {
	boundaries := []struct {
		name   string
		value  float64
		origin float64
		step   float64
	}{
		{"xfirst", exts.XFirst, geot.OriginX(), geot.XStep()},
		{"yfirst", exts.YFirst, geot.OriginY(), geot.YStep()},
		{"xlast", exts.XLast, geot.OriginX(), geot.XStep()},
		{"ylast", exts.YLast, geot.OriginY(), geot.YStep()},
	}

	for _, b := range boundaries {
		steps := (b.value - b.origin) / b.step
		offset := math.Abs(steps-math.Round(steps)) * math.Abs(b.step)
		if offset > AlignmentTol*math.Abs(b.step) {
			return &AlignmentError{Boundary: b.name, Value: b.value, Offset: offset, Step: b.step}
		}
	}
	return nil
}
