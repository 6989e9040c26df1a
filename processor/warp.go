package processor

import (
	"fmt"
	"math"

	"golang.org/x/net/context"

	"github.com/nci/sarprep/utils"
)

// Warper is the crop/reprojection collaborator. It produces a new dataset
// covering the target extents at the requested resolution; the resampling
// policy is the implementation's concern. The pipeline never mutates the
// source dataset.
type Warper interface {
	Warp(ctx context.Context, ds *Dataset, exts Extents, xstep, ystep float64) (*Dataset, error)
}

// LocalWarper is the in-process implementation for axis-aligned north-up
// grids sharing one coordinate reference system, which is all this
// pipeline handles. Destination samples take the value of the nearest
// source sample; samples outside the source coverage take the band's
// nodata marker.
type LocalWarper struct{}

func (w *LocalWarper) Warp(ctx context.Context, ds *Dataset, exts Extents, xstep, ystep float64) (*Dataset, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if xstep <= 0 || ystep >= 0 {
		return nil, fmt.Errorf("warp: target steps must be north-up (xstep > 0, ystep < 0), got (%v, %v)", xstep, ystep)
	}

	dstWidth := int(math.Round((exts.XLast - exts.XFirst) / xstep))
	dstHeight := int(math.Round((exts.YLast - exts.YFirst) / ystep))
	if dstWidth < 1 || dstHeight < 1 {
		return nil, fmt.Errorf("warp: degenerate target extents (%v, %v, %v, %v)", exts.XFirst, exts.YFirst, exts.XLast, exts.YLast)
	}

	dstGeoT := utils.GeoTransform{exts.XFirst, xstep, 0, exts.YFirst, 0, ystep}
	out := &Dataset{
		Path:   ds.Path,
		GeoT:   dstGeoT,
		Width:  dstWidth,
		Height: dstHeight,
	}

	srcX0 := ds.GeoT.OriginX()
	srcY0 := ds.GeoT.OriginY()
	srcXStep := ds.GeoT.XStep()
	srcYStep := ds.GeoT.YStep()

	for _, band := range ds.Bands {
		fill := band.NoData
		data := make([]float64, dstWidth*dstHeight)
		for r := 0; r < dstHeight; r++ {
			gy := exts.YFirst + (float64(r)+0.5)*ystep
			srcRow := int(math.Floor((gy - srcY0) / srcYStep))

			for c := 0; c < dstWidth; c++ {
				gx := exts.XFirst + (float64(c)+0.5)*xstep
				srcCol := int(math.Floor((gx - srcX0) / srcXStep))

				if srcRow < 0 || srcRow >= band.Height || srcCol < 0 || srcCol >= band.Width {
					data[r*dstWidth+c] = fill
				} else {
					data[r*dstWidth+c] = band.Data[srcRow*band.Width+srcCol]
				}
			}
		}

		out.Bands = append(out.Bands, &utils.Float64Raster{
			NameSpace: band.NameSpace,
			Data:      data,
			Height:    dstHeight,
			Width:     dstWidth,
			NoData:    band.NoData,
		})
	}

	return out, nil
}
