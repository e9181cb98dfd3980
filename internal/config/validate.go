package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}
	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	if c.Store.Driver == DriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
	}

	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverPostgres, DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", s.Driver, DriverPostgres, DriverSQLite, DriverMemory)
	}
	if strings.TrimSpace(s.Namespace) == "" {
		return fmt.Errorf("namespace is required")
	}
	if s.FlushInterval < 0 {
		return fmt.Errorf("flush_interval must be >= 0 (got %v)", s.FlushInterval)
	}
	if s.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", s.WriteTimeout)
	}
	return nil
}

func (s *ScheduleConfig) validate() error {
	steps, err := ParseSteps(s.StepsRaw)
	if err != nil {
		return fmt.Errorf("steps: %w", err)
	}
	if len(steps) == 0 {
		return fmt.Errorf("steps: at least one interval is required")
	}
	if s.FailureInterval < 0 {
		return fmt.Errorf("failure_interval must be >= 0 (got %v)", s.FailureInterval)
	}
	s.Steps = steps
	return nil
}

// ParseSteps parses a comma-separated string of durations (e.g. "10m,1h")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		steps = append(steps, d)
	}

	return steps, nil
}
