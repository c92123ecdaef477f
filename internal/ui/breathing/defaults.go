package breathing

import "time"

// DefaultConfig returns a relaxed 4-2-6 cadence at roughly 30 frames per
// second.
func DefaultConfig() Config {
	return Config{
		Inhale: 4 * time.Second,
		Hold:   2 * time.Second,
		Exhale: 6 * time.Second,
		Rest:   time.Second,

		FrameInterval: 33 * time.Millisecond,
		MinScale:      0.55,
		MaxScale:      1.0,
	}
}
