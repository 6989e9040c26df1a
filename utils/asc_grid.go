package utils

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultASCNoData is written for missing samples when the source raster
// carries NaN as its nodata marker, since the ASCII grid format cannot
// express NaN portably.
const DefaultASCNoData = -9999.0

// ReadASCGrid reads an ESRI ASCII grid file into a Float64Raster plus the
// geotransform of its grid. Samples equal to the NODATA_value are loaded
// as NaN.
func ReadASCGrid(path string) (*Float64Raster, GeoTransform, error) {
	var geot GeoTransform

	f, err := os.Open(path)
	if err != nil {
		return nil, geot, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	scanner.Split(bufio.ScanWords)

	header := map[string]float64{}
	headerKeys := []string{"ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "nodata_value"}
	for _, key := range headerKeys {
		if !scanner.Scan() {
			return nil, geot, fmt.Errorf("%s: truncated ASC header", path)
		}
		name := strings.ToLower(scanner.Text())
		if name != key {
			return nil, geot, fmt.Errorf("%s: expected ASC header field %s, found %s", path, key, name)
		}
		if !scanner.Scan() {
			return nil, geot, fmt.Errorf("%s: missing value for ASC header field %s", path, key)
		}
		val, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, geot, fmt.Errorf("%s: bad value for ASC header field %s: %v", path, key, err)
		}
		header[key] = val
	}

	width := int(header["ncols"])
	height := int(header["nrows"])
	if width < 1 || height < 1 {
		return nil, geot, fmt.Errorf("%s: bad ASC grid size %vx%v", path, width, height)
	}

	cellSize := header["cellsize"]
	noData := header["nodata_value"]

	data := make([]float64, width*height)
	for i := range data {
		if !scanner.Scan() {
			return nil, geot, fmt.Errorf("%s: truncated ASC data at sample %d of %d", path, i, len(data))
		}
		val, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, geot, fmt.Errorf("%s: bad ASC sample %d: %v", path, i, err)
		}
		if val == noData {
			val = math.NaN()
		}
		data[i] = val
	}

	geot = GeoTransform{
		header["xllcorner"],
		cellSize,
		0,
		header["yllcorner"] + float64(height)*cellSize,
		0,
		-cellSize,
	}

	raster := &Float64Raster{Data: data, Width: width, Height: height, NoData: math.NaN()}
	return raster, geot, nil
}

// WriteASCGrid writes a Float64Raster as an ESRI ASCII grid. The grid
// must be square-celled (|xstep| == |ystep|), which every raster produced
// by equal-look multilooking of a square-celled input satisfies.
func WriteASCGrid(path string, r *Float64Raster, geot GeoTransform) error {
	if math.Abs(geot.XStep()+geot.YStep()) > 1e-12*math.Abs(geot.XStep()) {
		return fmt.Errorf("%s: ASC grids require square cells, got xstep %v ystep %v", path, geot.XStep(), geot.YStep())
	}

	noData := r.NoData
	if math.IsNaN(noData) {
		noData = DefaultASCNoData
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", r.Width)
	fmt.Fprintf(w, "nrows %d\n", r.Height)
	fmt.Fprintf(w, "xllcorner %.12g\n", geot.OriginX())
	fmt.Fprintf(w, "yllcorner %.12g\n", geot.OriginY()+float64(r.Height)*geot.YStep())
	fmt.Fprintf(w, "cellsize %.12g\n", geot.XStep())
	fmt.Fprintf(w, "NODATA_value %.12g\n", noData)

	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			v := r.Data[row*r.Width+col]
			if math.IsNaN(v) {
				v = noData
			}
			fmt.Fprintf(w, "%.12g", v)
		}
		w.WriteByte('\n')
	}

	return w.Flush()
}
