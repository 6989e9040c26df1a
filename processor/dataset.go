package processor

import (
	"github.com/nci/sarprep/utils"
)

// Band namespaces. An interferogram carries amplitude and phase bands, a
// DEM carries a single height band.
const (
	BandAmplitude = "amplitude"
	BandPhase     = "phase"
	BandHeight    = "height"
)

// Dataset is one georeferenced input or output layer held in memory: a
// file identity, a grid and one or more named bands. The pipeline reads
// grid metadata and band arrays but file lifecycle belongs to the caller.
type Dataset struct {
	Path          string
	GeoT          utils.GeoTransform
	Width, Height int
	Bands         []*utils.Float64Raster
}

// Extents returns the bounding extents of the dataset grid, first
// coordinates at the grid origin and last coordinates at the far corner.
// With the north-up convention YFirst exceeds YLast.
func (ds *Dataset) Extents() Extents {
	return Extents{
		XFirst: ds.GeoT.OriginX(),
		YFirst: ds.GeoT.OriginY(),
		XLast:  ds.GeoT.OriginX() + float64(ds.Width)*ds.GeoT.XStep(),
		YLast:  ds.GeoT.OriginY() + float64(ds.Height)*ds.GeoT.YStep(),
	}
}

// SameGrid reports whether two datasets live on the identical grid, i.e.
// equal geotransforms and equal raster sizes.
func (ds *Dataset) SameGrid(other *Dataset) bool {
	return ds.Width == other.Width && ds.Height == other.Height &&
		ds.GeoT.Equal(other.GeoT, gridEqualTol*ds.GeoT.XStep())
}

// Band returns the band with the given namespace, or nil.
func (ds *Dataset) Band(nameSpace string) *utils.Float64Raster {
	for _, b := range ds.Bands {
		if b.NameSpace == nameSpace {
			return b
		}
	}
	return nil
}

// gridEqualTol scales the pixel step into the tolerance used when
// comparing geotransforms of nominally identical grids.
const gridEqualTol = 1e-9
