package processor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MlookedPath derives the output file identity for a multilooked raster
// by embedding the looks and crop option into the file name:
// dir/stem.tif -> dir/stem_<looks>rlks_<crop>cr.tif.
//
// The transformation is not idempotent: applying it to an already
// suffixed path appends a second suffix. Callers chaining preparation
// runs must not re-derive names from derived paths.
func MlookedPath(path string, looks int, cropOut CropOption) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%drlks_%dcr%s", strings.TrimSuffix(path, ext), looks, int(cropOut), ext)
}
