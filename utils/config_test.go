package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadJobConfig(t *testing.T) {
	doc := `
input_paths:
  - geo_060619-061002.asc
  - geo_070326-070917.asc
dem_path: sydney_dem.asc
crop_option: 3
xlooks: 4
ylooks: 4
thresh: 0.5
custom_extents: [150.91, -34.17, 150.93, -34.21]
warp_workers:
  - 127.0.0.1:6000
index_address: 127.0.0.1:8080
`
	tmpDir, err := ioutil.TempDir("", "sarprep_conf_")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	confPath := filepath.Join(tmpDir, "prep.yaml")
	if err := ioutil.WriteFile(confPath, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadJobConfig(confPath)
	if err != nil {
		t.Errorf("config load failed: %v", err)
		return
	}

	if len(cfg.InputPaths) != 2 || cfg.DEMPath != "sydney_dem.asc" {
		t.Errorf("unexpected inputs: %v, %v", cfg.InputPaths, cfg.DEMPath)
	}
	if cfg.CropOption != 3 || cfg.XLooks != 4 || cfg.YLooks != 4 || cfg.Thresh != 0.5 {
		t.Errorf("unexpected parameters: %+v", cfg)
	}
	if len(cfg.CustomExtents) != 4 || cfg.CustomExtents[0] != 150.91 {
		t.Errorf("unexpected custom extents: %v", cfg.CustomExtents)
	}
	if len(cfg.WarpWorkers) != 1 || cfg.IndexAddress != "127.0.0.1:8080" {
		t.Errorf("unexpected service addresses: %v, %v", cfg.WarpWorkers, cfg.IndexAddress)
	}
}

func TestLoadJobConfigRejectsBadDocs(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "sarprep_conf_")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	expected := []struct {
		name string
		doc  string
	}{
		{"no_inputs.yaml", "xlooks: 2\nylooks: 2\n"},
		{"bad_extents.yaml", "input_paths: [a.asc]\ncustom_extents: [1, 2, 3]\n"},
		{"not_yaml.yaml", "input_paths: [a.asc\n"},
	}

	for _, exp := range expected {
		confPath := filepath.Join(tmpDir, exp.name)
		if err := ioutil.WriteFile(confPath, []byte(exp.doc), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadJobConfig(confPath); err == nil {
			t.Errorf("config %v accepted", exp.name)
		}
	}
}

func TestIntLooks(t *testing.T) {
	looks, err := IntLooks(4)
	if err != nil || looks != 4 {
		t.Errorf("integer looks rejected: %v, %v", looks, err)
	}

	for _, v := range []float64{0, -1, -100000.6, 2.5} {
		if _, err := IntLooks(v); err == nil {
			t.Errorf("looks value %v accepted", v)
		}
	}
}
