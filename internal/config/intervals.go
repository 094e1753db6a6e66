package config

import "time"

// Worker intervals
const (
	// ZoneReloadInterval defines how often the reload worker re-reads the zone file
	ZoneReloadInterval = 60 * time.Second
)
