package main

/* prep is a batch tool preparing a stack of georeferenced interferograms
   (plus an optional DEM) for time-series analysis. It brings every input
   onto a common spatial grid, chosen by one of four crop policies, and
   then reduces the resolution by NaN-tolerant block averaging
   (multilooking). The actual crop/resample of pixel data is delegated to
   a warp collaborator, either in-process or a pool of gRPC warp worker
   services. Prepared outputs can optionally be recorded in the index
   API. The job is described by a YAML config document. */

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"golang.org/x/net/context"

	proc "github.com/nci/sarprep/processor"
	"github.com/nci/sarprep/utils"
)

var (
	configFile = flag.String("conf", "prep.yaml", "Preparation job config file.")
	verbose    = flag.Bool("v", false, "Verbose mode for more outputs.")
)

var (
	Error *log.Logger
	Info  *log.Logger
)

func init() {
	Error = log.New(os.Stderr, "PREP: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "PREP: ", log.Ldate|log.Ltime|log.Lshortfile)

	flag.Parse()
}

// openDataset reads one ASC grid input into a single-band dataset.
func openDataset(path string, nameSpace string) (*proc.Dataset, error) {
	raster, geot, err := utils.ReadASCGrid(path)
	if err != nil {
		return nil, err
	}
	raster.NameSpace = nameSpace

	return &proc.Dataset{
		Path:   path,
		GeoT:   geot,
		Width:  raster.Width,
		Height: raster.Height,
		Bands:  []*utils.Float64Raster{raster},
	}, nil
}

// recordOutput registers one prepared raster with the index API. The
// index is advisory metadata: failures are logged, never fatal.
func recordOutput(indexAddress string, out *proc.Dataset, srcPath string, looks int, cropOpt proc.CropOption) {
	exts := out.Extents()
	params := url.Values{}
	params.Set("path", out.Path)
	params.Set("source_path", srcPath)
	params.Set("looks", strconv.Itoa(looks))
	params.Set("crop_option", strconv.Itoa(int(cropOpt)))
	params.Set("xfirst", fmt.Sprintf("%v", exts.XFirst))
	params.Set("yfirst", fmt.Sprintf("%v", exts.YFirst))
	params.Set("xlast", fmt.Sprintf("%v", exts.XLast))
	params.Set("ylast", fmt.Sprintf("%v", exts.YLast))
	params.Set("width", strconv.Itoa(out.Width))
	params.Set("height", strconv.Itoa(out.Height))

	reqURL := fmt.Sprintf("http://%s/?record&%s", indexAddress, params.Encode())
	resp, err := http.Get(reqURL)
	if err != nil {
		Error.Printf("index record failed for %v: %v", out.Path, err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		Error.Printf("index record failed for %v: http %v", out.Path, resp.StatusCode)
	}
}

func main() {
	cfg, err := utils.LoadJobConfig(*configFile)
	if err != nil {
		Error.Fatalf("%v", err)
	}

	xlooks, err := utils.IntLooks(cfg.XLooks)
	if err != nil {
		Error.Fatalf("xlooks: %v", err)
	}
	ylooks, err := utils.IntLooks(cfg.YLooks)
	if err != nil {
		Error.Fatalf("ylooks: %v", err)
	}

	mask, err := proc.ParseNoDataMask(cfg.NoDataPattern)
	if err != nil {
		Error.Fatalf("%v", err)
	}

	var datasets []*proc.Dataset
	for _, path := range cfg.InputPaths {
		ds, err := openDataset(path, proc.BandPhase)
		if err != nil {
			Error.Fatalf("%v", err)
		}
		datasets = append(datasets, ds)
	}
	if len(cfg.DEMPath) > 0 {
		dem, err := openDataset(cfg.DEMPath, proc.BandHeight)
		if err != nil {
			Error.Fatalf("%v", err)
		}
		datasets = append(datasets, dem)
	}

	var userExts *proc.Extents
	if len(cfg.CustomExtents) == 4 {
		userExts = &proc.Extents{
			XFirst: cfg.CustomExtents[0],
			YFirst: cfg.CustomExtents[1],
			XLast:  cfg.CustomExtents[2],
			YLast:  cfg.CustomExtents[3],
		}
	}

	var warper proc.Warper
	if len(cfg.WarpWorkers) > 0 {
		warper = proc.NewGRPCWarper(cfg.WarpWorkers, cfg.MaxRecvMsgSize, *verbose)
	} else {
		warper = &proc.LocalWarper{}
	}

	errChan := make(chan error, 100)
	go func() {
		for err := range errChan {
			Error.Printf("%v", err)
		}
	}()

	pipeline := proc.InitPrepPipeline(context.Background(), warper, proc.DefaultConcLimit, *verbose, errChan)
	outputs, err := pipeline.Process(&proc.PrepJob{
		Datasets: datasets,
		CropOpt:  proc.CropOption(cfg.CropOption),
		XLooks:   xlooks,
		YLooks:   ylooks,
		Thresh:   cfg.Thresh,
		UserExts: userExts,
		Mask:     mask,
	})
	if err != nil {
		Error.Fatalf("%v", err)
	}

	if len(outputs) == 0 {
		Info.Printf("inputs already prepared, no outputs written")
		return
	}

	for i, out := range outputs {
		if err := utils.WriteASCGrid(out.Path, out.Bands[0], out.GeoT); err != nil {
			Error.Fatalf("%v", err)
		}
		Info.Printf("wrote %v (%vx%v)", out.Path, out.Width, out.Height)

		if len(cfg.IndexAddress) > 0 {
			recordOutput(cfg.IndexAddress, out, datasets[i].Path, xlooks, proc.CropOption(cfg.CropOption))
		}
	}
}
