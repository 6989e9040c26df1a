package processor

// Target extent resolution for the four crop policies. Interferograms and
// auxiliary rasters such as a DEM participate uniformly: the intersection,
// union and same-size checks run over the whole input collection.

// CropOption selects how the common target extents are derived before
// multilooking. The integer values are stable because they are embedded
// in output file names.
type CropOption int

const (
	MinimumCrop     CropOption = 1
	MaximumCrop     CropOption = 2
	CustomCrop      CropOption = 3
	AlreadySameSize CropOption = 4
)

func (c CropOption) String() string {
	switch c {
	case MinimumCrop:
		return "minimum"
	case MaximumCrop:
		return "maximum"
	case CustomCrop:
		return "custom"
	case AlreadySameSize:
		return "already-same-size"
	}
	return "unknown"
}

// Extents are axis-aligned first/last bounding coordinates in the input
// coordinate system. XFirst < XLast always; YFirst > YLast on north-up
// grids since the y step is negative.
type Extents struct {
	XFirst float64
	YFirst float64
	XLast  float64
	YLast  float64
}

// ResolveExtents computes the target crop extents for the given policy
// over the whole input collection. userExts is consulted for CustomCrop
// only, and is validated against the grid of the first dataset.
// AlreadySameSize performs no extent computation; it verifies every input
// already lives on the grid of the first one.
func ResolveExtents(opt CropOption, dss []*Dataset, userExts *Extents) (Extents, error) {
	if len(dss) == 0 {
		return Extents{}, &ConfigurationError{Param: "rasters", Value: 0, Reason: "at least one input raster is required"}
	}

	switch opt {
	case MinimumCrop:
		return intersectExtents(dss)
	case MaximumCrop:
		return unionExtents(dss), nil
	case CustomCrop:
		if userExts == nil {
			return Extents{}, &ConfigurationError{Param: "custom extents", Value: nil, Reason: "custom crop requires user extents"}
		}
		if err := ValidateAlignment(*userExts, dss[0].GeoT); err != nil {
			return Extents{}, err
		}
		return *userExts, nil
	case AlreadySameSize:
		ref := dss[0]
		for _, ds := range dss[1:] {
			if !ds.SameGrid(ref) {
				return Extents{}, &ExtentMismatchError{Path: ds.Path, RefPath: ref.Path}
			}
		}
		return ref.Extents(), nil
	}

	return Extents{}, &ConfigurationError{Param: "crop option", Value: int(opt), Reason: "must be 1 (minimum), 2 (maximum), 3 (custom) or 4 (already same size)"}
}

// intersectExtents returns the largest rectangle common to every input,
// failing when the inputs do not overlap.
func intersectExtents(dss []*Dataset) (Extents, error) {
	exts := dss[0].Extents()
	for _, ds := range dss[1:] {
		e := ds.Extents()
		if e.XFirst > exts.XFirst {
			exts.XFirst = e.XFirst
		}
		if e.XLast < exts.XLast {
			exts.XLast = e.XLast
		}
		// y runs downwards: the common top is the lowest origin, the
		// common bottom the highest far edge
		if e.YFirst < exts.YFirst {
			exts.YFirst = e.YFirst
		}
		if e.YLast > exts.YLast {
			exts.YLast = e.YLast
		}
	}

	if exts.XFirst >= exts.XLast || exts.YLast >= exts.YFirst {
		return Extents{}, &IncompatibleExtentsError{Exts: exts}
	}
	return exts, nil
}

// unionExtents returns the smallest rectangle containing every input.
func unionExtents(dss []*Dataset) Extents {
	exts := dss[0].Extents()
	for _, ds := range dss[1:] {
		e := ds.Extents()
		if e.XFirst < exts.XFirst {
			exts.XFirst = e.XFirst
		}
		if e.XLast > exts.XLast {
			exts.XLast = e.XLast
		}
		if e.YFirst > exts.YFirst {
			exts.YFirst = e.YFirst
		}
		if e.YLast < exts.YLast {
			exts.YLast = e.YLast
		}
	}
	return exts
}
