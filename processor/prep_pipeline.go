package processor

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/net/context"

	"github.com/nci/sarprep/utils"
)

const DefaultConcLimit = 16

// PrepJob holds everything one preparation run needs: the input
// collection (interferograms plus any auxiliary rasters such as a DEM),
// the crop policy, the multilook factors and the NaN-tolerance threshold.
type PrepJob struct {
	Datasets []*Dataset
	CropOpt  CropOption
	XLooks   int
	YLooks   int
	Thresh   float64
	UserExts *Extents
	Mask     *NoDataMask
}

// PrepPipeline drives crop and multilook preparation across a raster
// collection. Extent resolution requires the whole collection up front;
// the per-raster work after that is independent and fans out across
// workers bounded by ConcLimit.
type PrepPipeline struct {
	Context   context.Context
	Error     chan error
	Warper    Warper
	ConcLimit int
	Verbose   bool
}

func InitPrepPipeline(ctx context.Context, warper Warper, concLimit int, verbose bool, errChan chan error) *PrepPipeline {
	if concLimit <= 0 {
		concLimit = DefaultConcLimit
	}
	return &PrepPipeline{
		Context:   ctx,
		Error:     errChan,
		Warper:    warper,
		ConcLimit: concLimit,
		Verbose:   verbose,
	}
}

// Process validates the job, resolves the target extents and produces
// one cropped, multilooked dataset per input, in input order. Under the
// already-same-size policy with unit looks there is nothing to do and no
// outputs are produced.
func (p *PrepPipeline) Process(job *PrepJob) ([]*Dataset, error) {
	if job.XLooks < 1 {
		return nil, &ConfigurationError{Param: "xlooks", Value: job.XLooks, Reason: "must be a positive integer"}
	}
	if job.YLooks < 1 {
		return nil, &ConfigurationError{Param: "ylooks", Value: job.YLooks, Reason: "must be a positive integer"}
	}
	if err := CheckThresh(job.Thresh); err != nil {
		return nil, err
	}

	exts, err := ResolveExtents(job.CropOpt, job.Datasets, job.UserExts)
	if err != nil {
		return nil, err
	}

	resample := job.XLooks != 1 || job.YLooks != 1
	if job.CropOpt == AlreadySameSize && !resample {
		if p.Verbose {
			log.Printf("prep: inputs already share a grid and looks are (1, 1), nothing to do")
		}
		return nil, nil
	}

	mask := job.Mask
	if mask == nil {
		mask, err = ParseNoDataMask(DefaultNoDataPattern)
		if err != nil {
			return nil, err
		}
	}

	// all outputs share the grid of the first input at target extents
	xstep := job.Datasets[0].GeoT.XStep()
	ystep := job.Datasets[0].GeoT.YStep()

	outputs := make([]*Dataset, len(job.Datasets))
	errs := make([]error, len(job.Datasets))

	cLimiter := NewConcLimiter(p.ConcLimit)
	for ids, ds := range job.Datasets {
		cLimiter.Increase()
		go func(ids int, ds *Dataset) {
			defer cLimiter.Decrease()
			out, err := p.prepareOne(ds, job, mask, exts, xstep, ystep)
			if err != nil {
				errs[ids] = err
				select {
				case p.Error <- err:
				default:
				}
				return
			}
			outputs[ids] = out
		}(ids, ds)
	}
	cLimiter.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

func (p *PrepPipeline) prepareOne(ds *Dataset, job *PrepJob, mask *NoDataMask, exts Extents, xstep, ystep float64) (*Dataset, error) {
	var cropped *Dataset
	var err error

	if job.CropOpt == AlreadySameSize {
		// the grids already match, multilook in place without warping
		cropped = &Dataset{Path: ds.Path, GeoT: ds.GeoT, Width: ds.Width, Height: ds.Height}
		for _, band := range ds.Bands {
			cropped.Bands = append(cropped.Bands, band.Copy())
		}
	} else {
		cropped, err = p.Warper.Warp(p.Context, ds, exts, xstep, ystep)
		if err != nil {
			return nil, err
		}
	}

	for _, band := range cropped.Bands {
		band.ToNaN()
		if band.NameSpace == BandPhase {
			if err := mask.Apply(band); err != nil {
				return nil, err
			}
		}
	}

	out := cropped
	if job.XLooks != 1 || job.YLooks != 1 {
		looked := &Dataset{
			Path: cropped.Path,
			GeoT: utils.GeoTransform{
				cropped.GeoT.OriginX(),
				cropped.GeoT.XStep() * float64(job.XLooks),
				0,
				cropped.GeoT.OriginY(),
				0,
				cropped.GeoT.YStep() * float64(job.YLooks),
			},
			Width:  cropped.Width / job.XLooks,
			Height: cropped.Height / job.YLooks,
		}

		for _, band := range cropped.Bands {
			lookedBand, err := Resample(band, job.XLooks, job.YLooks, job.Thresh)
			if err != nil {
				return nil, fmt.Errorf("error multilooking band %v of %v: %v", band.NameSpace, cropped.Path, err)
			}
			looked.Bands = append(looked.Bands, lookedBand)
		}
		out = looked
	}

	// missing samples ride through averaging as NaN; bands that designate
	// a finite nodata marker get it back in the output
	for i, band := range out.Bands {
		marker := ds.Bands[i].NoData
		if math.IsNaN(marker) {
			continue
		}
		for j, v := range band.Data {
			if math.IsNaN(v) {
				band.Data[j] = marker
			}
		}
		band.NoData = marker
	}

	out.Path = MlookedPath(ds.Path, job.XLooks, job.CropOpt)
	if p.Verbose {
		log.Printf("prep: %v -> %v (%vx%v)", ds.Path, out.Path, out.Width, out.Height)
	}
	return out, nil
}
