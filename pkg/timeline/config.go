package timeline

// Config holds the pixel and minute constants of the timeline grid.
type Config struct {
	// HourHeight is the on-screen height of one hour, in pixels.
	HourHeight      float64
	Snap            int
	MinDuration     int
	MaxDuration     int
	DefaultDuration int
}

// DefaultConfig returns the standard grid: 60px per hour, 15 minute snap,
// durations between 30 minutes and 8 hours, 1 hour by default.
func DefaultConfig() Config {
	return Config{
		HourHeight:      60,
		Snap:            15,
		MinDuration:     30,
		MaxDuration:     480,
		DefaultDuration: 60,
	}
}

// normalize fills zero or negative values from DefaultConfig.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.HourHeight <= 0 {
		c.HourHeight = d.HourHeight
	}
	if c.Snap <= 0 {
		c.Snap = d.Snap
	}
	if c.MinDuration <= 0 {
		c.MinDuration = d.MinDuration
	}
	if c.MaxDuration <= 0 {
		c.MaxDuration = d.MaxDuration
	}
	if c.MaxDuration < c.MinDuration {
		c.MaxDuration = c.MinDuration
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = d.DefaultDuration
	}
	return c
}

// PixelsPerMinute is HourHeight/60.
func (c Config) PixelsPerMinute() float64 {
	return c.normalize().HourHeight / 60
}
