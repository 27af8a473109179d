package config

import "runtime"

// Worker resolution chain (highest priority first):
//   1. CLI flag (--workers)
//   2. Environment variable (RTCORE_WORKERS)
//   3. Hardware estimation (this file)

// ApplyAdaptiveDefaults fills in settings left at their zero value with
// estimates based on the host. User-specified values are preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers(cfg.Height)
	}
	return cfg
}

// EstimateOptimalWorkers returns how many rows should be rendered
// concurrently: one per CPU, never more than there are rows.
func EstimateOptimalWorkers(rows int) int {
	workers := runtime.NumCPU()
	if rows > 0 && workers > rows {
		workers = rows
	}
	if workers < 1 {
		return 1
	}
	return workers
}
