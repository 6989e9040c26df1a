package processor

import (
	"fmt"
)

// The preparation pipeline surfaces four failure classes, all raised
// synchronously at the point of detection and never downgraded or
// retried. They represent caller errors or genuinely incompatible input
// data and carry enough detail to fix the input.

// ConfigurationError reports an invalid looks, threshold or crop-option
// parameter.
type ConfigurationError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// IncompatibleExtentsError reports that the minimum-crop policy found no
// region common to all input rasters.
type IncompatibleExtentsError struct {
	Exts Extents
}

func (e *IncompatibleExtentsError) Error() string {
	return fmt.Sprintf("input rasters do not share a common area: intersection collapsed to (%v, %v, %v, %v)",
		e.Exts.XFirst, e.Exts.YFirst, e.Exts.XLast, e.Exts.YLast)
}

// ExtentMismatchError reports a raster whose grid differs from the
// reference raster under the already-same-size policy.
type ExtentMismatchError struct {
	Path    string
	RefPath string
}

func (e *ExtentMismatchError) Error() string {
	return fmt.Sprintf("raster %s does not match the grid of %s: already-same-size requires identical geotransforms and sizes",
		e.Path, e.RefPath)
}

// AlignmentError reports a custom crop boundary that is not commensurate
// with the reference pixel grid.
type AlignmentError struct {
	Boundary string
	Value    float64
	Offset   float64
	Step     float64
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("custom extent %s=%v is not aligned to the pixel grid: offset %v of step %v",
		e.Boundary, e.Value, e.Offset, e.Step)
}
