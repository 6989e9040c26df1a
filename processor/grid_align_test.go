package processor

import (
	"testing"
)

func TestAlignmentExact(t *testing.T) {
	ds := testDataset("geo_060619-061002.tif", 0, 0, 47, 72)
	exts := Extents{
		XFirst: 150.91 + 7*testStep,
		YFirst: -34.17 - 16*testStep,
		XLast:  150.91 + 27*testStep,
		YLast:  -34.17 - 44*testStep,
	}

	if err := ValidateAlignment(exts, ds.GeoT); err != nil {
		t.Errorf("exact grid multiples rejected: %v", err)
	}
}

func TestAlignmentMisaligned(t *testing.T) {
	ds := testDataset("geo_060619-061002.tif", 0, 0, 47, 72)
	aligned := Extents{
		XFirst: 150.91 + 7*testStep,
		YFirst: -34.17 - 16*testStep,
		XLast:  150.91 + 27*testStep,
		YLast:  -34.17 - 44*testStep,
	}

	boundaries := []string{"xfirst", "yfirst", "xlast", "ylast"}
	for i, name := range boundaries {
		// step / pi * [1000, 100]: incommensurate with the pixel grid
		for _, offset := range []float64{0.265258, 0.026526} {
			exts := aligned
			switch i {
			case 0:
				exts.XFirst += offset
			case 1:
				exts.YFirst += offset
			case 2:
				exts.XLast += offset
			case 3:
				exts.YLast += offset
			}

			err := ValidateAlignment(exts, ds.GeoT)
			if err == nil {
				t.Errorf("misaligned %v (+%v) accepted", name, offset)
				continue
			}
			alignErr, ok := err.(*AlignmentError)
			if !ok {
				t.Errorf("unexpected error type for misaligned %v: %v", name, err)
				continue
			}
			if alignErr.Boundary != name {
				t.Errorf("alignment error names %v, expected %v", alignErr.Boundary, name)
			}
		}
	}
}
