package processor

import (
	"math"
	"testing"

	"golang.org/x/net/context"
)

func newTestPipeline() *PrepPipeline {
	return InitPrepPipeline(context.Background(), &LocalWarper{}, DefaultConcLimit, false, make(chan error, 100))
}

func TestPrepareNothingToDo(t *testing.T) {
	// matching grids and unit looks: no outputs at all
	p := newTestPipeline()
	outputs, err := p.Process(&PrepJob{
		Datasets: []*Dataset{
			testDataset("0.tif", 0, 0, 47, 72),
			testDataset("1.tif", 0, 0, 47, 72),
		},
		CropOpt: AlreadySameSize,
		XLooks:  1,
		YLooks:  1,
	})
	if err != nil {
		t.Errorf("prepare failed: %v", err)
		return
	}
	if len(outputs) != 0 {
		t.Errorf("expected no outputs for the nothing-to-do fast path, got %v", len(outputs))
	}
}

func TestPrepareSameSizeMismatch(t *testing.T) {
	p := newTestPipeline()
	_, err := p.Process(&PrepJob{
		Datasets: []*Dataset{
			testDataset("geo_060619-061002.tif", 0, 0, 47, 72),
			testDataset("geo_070326-070917.tif", 2, 3, 47, 72),
		},
		CropOpt: AlreadySameSize,
		XLooks:  1,
		YLooks:  1,
	})
	if err == nil {
		t.Errorf("prepare accepted mismatched rasters under already-same-size")
		return
	}
	if _, ok := err.(*ExtentMismatchError); !ok {
		t.Errorf("unexpected error type: %v", err)
	}
}

func TestPrepareSameSizeMultilook(t *testing.T) {
	p := newTestPipeline()
	outputs, err := p.Process(&PrepJob{
		Datasets: []*Dataset{
			testDataset("0.tif", 0, 0, 48, 72),
			testDataset("1.tif", 0, 0, 48, 72),
		},
		CropOpt: AlreadySameSize,
		XLooks:  2,
		YLooks:  2,
	})
	if err != nil {
		t.Errorf("prepare failed: %v", err)
		return
	}
	if len(outputs) != 2 {
		t.Errorf("expected 2 outputs, got %v", len(outputs))
		return
	}

	for _, out := range outputs {
		if !almostEqual(out.GeoT.XStep(), 2*testStep) || !almostEqual(out.GeoT.YStep(), -2*testStep) {
			t.Errorf("output geotransform not scaled by looks: %v", out.GeoT)
		}
		if out.Width != 24 || out.Height != 36 {
			t.Errorf("unexpected output shape: %vx%v", out.Width, out.Height)
		}
	}
	if outputs[0].Path != "0_2rlks_4cr.tif" || outputs[1].Path != "1_2rlks_4cr.tif" {
		t.Errorf("unexpected output paths: %v, %v", outputs[0].Path, outputs[1].Path)
	}
}

func TestPrepareCustomCropMultilook(t *testing.T) {
	scale := 4
	dss := []*Dataset{
		testDataset("geo_060619-061002.tif", 0, 0, 47, 72),
		testDataset("geo_070326-070917.tif", 0, 0, 47, 72),
		testDataset("sydney_dem.tif", 0, 0, 47, 72),
	}
	dss[2].Bands[0].NameSpace = BandHeight

	userExts := &Extents{
		XFirst: 150.91 + 7*testStep,
		YFirst: -34.17 - 16*testStep,
		XLast:  150.91 + 27*testStep, // 20 cells from xfirst
		YLast:  -34.17 - 44*testStep, // 28 cells from yfirst
	}

	p := newTestPipeline()
	outputs, err := p.Process(&PrepJob{
		Datasets: dss,
		CropOpt:  CustomCrop,
		XLooks:   scale,
		YLooks:   scale,
		Thresh:   1.0,
		UserExts: userExts,
	})
	if err != nil {
		t.Errorf("prepare failed: %v", err)
		return
	}
	if len(outputs) != 3 {
		t.Errorf("expected 3 outputs, got %v", len(outputs))
		return
	}

	for i, out := range outputs {
		if out.Width != 20/scale || out.Height != 28/scale {
			t.Errorf("unexpected output shape: expected %vx%v, actual %vx%v", 20/scale, 28/scale, out.Width, out.Height)
		}
		// outputs come back in input order
		if out.Path != MlookedPath(dss[i].Path, scale, CustomCrop) {
			t.Errorf("unexpected output path: expected %v, actual %v", MlookedPath(dss[i].Path, scale, CustomCrop), out.Path)
		}
	}

	head := outputs[0].GeoT
	for _, out := range outputs[1:] {
		if !out.GeoT.Equal(head, 1e-12) {
			t.Errorf("outputs do not share the target grid: %v vs %v", head, out.GeoT)
		}
	}
}

func TestPrepareCustomCropMisaligned(t *testing.T) {
	dss := []*Dataset{testDataset("geo_060619-061002.tif", 0, 0, 47, 72)}
	userExts := &Extents{
		XFirst: 150.91 + 7*testStep + 0.026526,
		YFirst: -34.17 - 16*testStep,
		XLast:  150.91 + 27*testStep,
		YLast:  -34.17 - 44*testStep,
	}

	p := newTestPipeline()
	_, err := p.Process(&PrepJob{
		Datasets: dss,
		CropOpt:  CustomCrop,
		XLooks:   1,
		YLooks:   1,
		UserExts: userExts,
	})
	if err == nil {
		t.Errorf("prepare accepted misaligned custom extents")
		return
	}
	if _, ok := err.(*AlignmentError); !ok {
		t.Errorf("unexpected error type: %v", err)
	}
}

func TestPrepareZeroPhaseBecomesNaN(t *testing.T) {
	ds := testDataset("geo_060619-061002.tif", 0, 0, 8, 8)
	ds.Bands[0].Data[5] = 0
	ds.Bands[0].Data[11] = 0

	p := newTestPipeline()
	outputs, err := p.Process(&PrepJob{
		Datasets: []*Dataset{ds},
		CropOpt:  MinimumCrop,
		XLooks:   1,
		YLooks:   1,
	})
	if err != nil {
		t.Errorf("prepare failed: %v", err)
		return
	}

	phase := outputs[0].Band(BandPhase)
	nanCount := 0
	for _, v := range phase.Data {
		if v == 0 {
			t.Errorf("zero phase sample survived preparation")
			return
		}
		if math.IsNaN(v) {
			nanCount++
		}
	}
	if nanCount != 2 {
		t.Errorf("expected 2 NaN phase samples, got %v", nanCount)
	}
}

func TestPreparePreservesNoDataMarker(t *testing.T) {
	ds := testDataset("sydney_dem.tif", 0, 0, 8, 8)
	band := ds.Bands[0]
	band.NameSpace = BandHeight
	band.NoData = -9999
	for i := 0; i < 4; i++ {
		band.Data[i] = -9999
	}

	p := newTestPipeline()
	outputs, err := p.Process(&PrepJob{
		Datasets: []*Dataset{ds},
		CropOpt:  AlreadySameSize,
		XLooks:   2,
		YLooks:   2,
		Thresh:   0,
	})
	if err != nil {
		t.Errorf("prepare failed: %v", err)
		return
	}

	out := outputs[0].Band(BandHeight)
	if out.NoData != -9999 {
		t.Errorf("nodata marker not preserved: %v", out.NoData)
	}
	// the first two tiles each contain two masked samples and fail the
	// strict threshold; their outputs carry the marker, not NaN
	if out.Data[0] != -9999 || out.Data[1] != -9999 {
		t.Errorf("missing tiles not written with the nodata marker: %v", out.Data[:4])
	}
	if math.IsNaN(out.Data[2]) || out.Data[2] == -9999 {
		t.Errorf("valid tile lost: %v", out.Data[2])
	}
}

func TestPrepareInvalidParams(t *testing.T) {
	dss := []*Dataset{testDataset("0.tif", 0, 0, 8, 8)}
	p := newTestPipeline()

	for _, looks := range []int{0, -1, -10} {
		if _, err := p.Process(&PrepJob{Datasets: dss, CropOpt: MinimumCrop, XLooks: looks, YLooks: 1}); err == nil {
			t.Errorf("prepare accepted xlooks %v", looks)
		}
		if _, err := p.Process(&PrepJob{Datasets: dss, CropOpt: MinimumCrop, XLooks: 1, YLooks: looks}); err == nil {
			t.Errorf("prepare accepted ylooks %v", looks)
		}
	}

	for _, thresh := range []float64{-0.5, 1.000001} {
		_, err := p.Process(&PrepJob{Datasets: dss, CropOpt: MinimumCrop, XLooks: 1, YLooks: 1, Thresh: thresh})
		if err == nil {
			t.Errorf("prepare accepted thresh %v", thresh)
		}
	}
}
