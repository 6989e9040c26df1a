package processor

import (
	"testing"
)

func TestMlookedPath(t *testing.T) {
	expected := []struct {
		path    string
		looks   int
		cropOut CropOption
		out     string
	}{
		{"geo_060619-061002.tif", 2, AlreadySameSize, "geo_060619-061002_2rlks_4cr.tif"},
		{"some/dir/geo_060619-061002.tif", 4, MaximumCrop, "some/dir/geo_060619-061002_4rlks_2cr.tif"},
		// not idempotent: an already-suffixed path gains a second suffix
		{"some/dir/geo_060619-061002_4rlks_8cr.tif", 4, CropOption(8), "some/dir/geo_060619-061002_4rlks_8cr_4rlks_8cr.tif"},
	}

	for _, exp := range expected {
		out := MlookedPath(exp.path, exp.looks, exp.cropOut)
		if out != exp.out {
			t.Errorf("unexpected mlooked path: expected %v, actual %v", exp.out, out)
		}
	}
}
