package utils

import (
	"fmt"
	"io/ioutil"
	"math"

	"gopkg.in/yaml.v2"
)

// JobConfig is the configuration of one preparation run. It is loaded
// from a YAML document listing the interferogram stack, the optional DEM,
// the crop/multilook parameters and the addresses of the external
// services the pipeline may talk to.
type JobConfig struct {
	InputPaths     []string  `yaml:"input_paths"`
	DEMPath        string    `yaml:"dem_path"`
	CropOption     int       `yaml:"crop_option"`
	XLooks         float64   `yaml:"xlooks"`
	YLooks         float64   `yaml:"ylooks"`
	Thresh         float64   `yaml:"thresh"`
	CustomExtents  []float64 `yaml:"custom_extents"`
	NoDataPattern  string    `yaml:"nodata_pattern"`
	WarpWorkers    []string  `yaml:"warp_workers"`
	IndexAddress   string    `yaml:"index_address"`
	MaxRecvMsgSize int       `yaml:"max_grpc_recv_msg_size"`
}

func LoadJobConfig(configFile string) (*JobConfig, error) {
	cfg := &JobConfig{}
	yamlRaw, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlRaw, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing job config %s: %v", configFile, err)
	}

	if len(cfg.InputPaths) == 0 {
		return nil, fmt.Errorf("job config %s lists no input rasters", configFile)
	}

	if len(cfg.CustomExtents) != 0 && len(cfg.CustomExtents) != 4 {
		return nil, fmt.Errorf("custom_extents requires 4 values (xfirst, yfirst, xlast, ylast), got %d", len(cfg.CustomExtents))
	}

	return cfg, nil
}

// IntLooks converts a numeric looks value to its integer form. Looks read
// from config are kept numeric so that misconfiguration surfaces
// explicitly: zero, negative, non-finite or fractional values are
// rejected here rather than silently truncated.
func IntLooks(looks float64) (int, error) {
	if math.IsNaN(looks) || math.IsInf(looks, 0) {
		return 0, fmt.Errorf("looks value is not finite: %v", looks)
	}
	if looks != math.Trunc(looks) {
		return 0, fmt.Errorf("looks value is not an integer: %v", looks)
	}
	if looks < 1 {
		return 0, fmt.Errorf("looks value is not positive: %v", looks)
	}
	return int(looks), nil
}
