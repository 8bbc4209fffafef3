package internal

import (
	"fmt"
	"time"
)

type Config struct {
	// LaneCount bounds the number of concurrently outstanding part fetches
	// system-wide: one per lane, never more.
	LaneCount     int           `env:"LANE_COUNT,default=4"`
	LaneQueueSize int           `env:"LANE_QUEUE_SIZE,default=64"`
	LaneThrottle  time.Duration `env:"LANE_THROTTLE,default=10ms"`

	DefaultPartSize int `env:"DEFAULT_PART_SIZE,default=524288"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	TransportRoot   string        `env:"TRANSPORT_ROOT"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	DebugPort       int           `env:"DEBUG_PORT,default=8080"`
}

func (c Config) Validate() error {
	if c.LaneCount <= 0 {
		return fmt.Errorf("LANE_COUNT must be positive, got %d", c.LaneCount)
	}
	if c.DefaultPartSize <= 0 {
		return fmt.Errorf("DEFAULT_PART_SIZE must be positive, got %d", c.DefaultPartSize)
	}
	return nil
}
