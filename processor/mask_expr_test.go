package processor

import (
	"math"
	"testing"

	"github.com/nci/sarprep/utils"
)

func TestNoDataMaskDefault(t *testing.T) {
	mask, err := ParseNoDataMask("")
	if err != nil {
		t.Errorf("default pattern failed to parse: %v", err)
		return
	}

	r := &utils.Float64Raster{Data: []float64{0, 1.5, 0, -2}, Width: 4, Height: 1, NoData: math.NaN()}
	if err := mask.Apply(r); err != nil {
		t.Errorf("mask apply failed: %v", err)
		return
	}

	if !math.IsNaN(r.Data[0]) || !math.IsNaN(r.Data[2]) {
		t.Errorf("zero samples not masked: %v", r.Data)
	}
	if r.Data[1] != 1.5 || r.Data[3] != -2 {
		t.Errorf("valid samples altered: %v", r.Data)
	}
}

func TestNoDataMaskCustomPattern(t *testing.T) {
	mask, err := ParseNoDataMask("v < 0")
	if err != nil {
		t.Errorf("pattern failed to parse: %v", err)
		return
	}

	r := &utils.Float64Raster{Data: []float64{-1, 0, 3}, Width: 3, Height: 1, NoData: math.NaN()}
	if err := mask.Apply(r); err != nil {
		t.Errorf("mask apply failed: %v", err)
		return
	}
	if !math.IsNaN(r.Data[0]) || r.Data[1] != 0 || r.Data[2] != 3 {
		t.Errorf("unexpected masking: %v", r.Data)
	}
}

func TestNoDataMaskBadPatterns(t *testing.T) {
	if _, err := ParseNoDataMask("v == "); err == nil {
		t.Errorf("accepted malformed pattern")
	}
	if _, err := ParseNoDataMask("phase == 0"); err == nil {
		t.Errorf("accepted unsupported variable")
	}

	mask, err := ParseNoDataMask("v + 1")
	if err != nil {
		t.Errorf("pattern failed to parse: %v", err)
		return
	}
	r := &utils.Float64Raster{Data: []float64{1}, Width: 1, Height: 1, NoData: math.NaN()}
	if err := mask.Apply(r); err == nil {
		t.Errorf("accepted non-boolean pattern at apply time")
	}
}
