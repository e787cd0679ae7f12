package planner

import "fmt"

// Config defines the capacity limits applied during planning.
type Config struct {
	// MaxBatchVolume caps the volume of a single production batch.
	MaxBatchVolume int `json:"max_batch_volume"`
	// MaxPrepsPerDay caps how many preparations share one production day.
	MaxPrepsPerDay int `json:"max_preps_per_day"`
	// MaxVolumePerDay caps the volume of one preparation type per day.
	MaxVolumePerDay int `json:"max_volume_per_day"`
}

// SetDefaults applies the workbook defaults.
func (c *Config) SetDefaults() {
	if c.MaxBatchVolume == 0 {
		c.MaxBatchVolume = 500
	}
	if c.MaxPrepsPerDay == 0 {
		c.MaxPrepsPerDay = 2
	}
	if c.MaxVolumePerDay == 0 {
		c.MaxVolumePerDay = 500
	}
}

// Validate checks that all limits are positive.
func (c Config) Validate() error {
	if c.MaxBatchVolume <= 0 {
		return fmt.Errorf("max_batch_volume must be positive")
	}
	if c.MaxPrepsPerDay <= 0 {
		return fmt.Errorf("max_preps_per_day must be positive")
	}
	if c.MaxVolumePerDay <= 0 {
		return fmt.Errorf("max_volume_per_day must be positive")
	}
	return nil
}
