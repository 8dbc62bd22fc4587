package stream

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/makair/telemetry-go/frame"
	"github.com/makair/telemetry-go/proto"
)

// DefaultBufferCapacity is the §5 resource-policy default: well above any
// frame observed on the wire, but bounded so a corrupted length prefix
// cannot force unbounded buffering.
const DefaultBufferCapacity = frame.MaxFrameSize

// Config tunes an Engine. Build one with DefaultConfig or LoadConfig; New
// also accepts a zero Config and fills each unset field with its default.
type Config struct {
	// BufferCapacity bounds the largest frame the engine will accept. A
	// frame whose declared length would exceed it is a framing error,
	// per §5.
	BufferCapacity int `yaml:"buffer_capacity"`

	// MinVersion and MaxVersion bound the protocol versions the engine
	// accepts; a frame declaring a version outside this range is
	// unknown-protocol-version even if the version byte itself is one
	// this module knows how to parse. Both default to the full {v1, v2}
	// range.
	MinVersion proto.Version `yaml:"min_version"`
	MaxVersion proto.Version `yaml:"max_version"`

	// Logger receives structured events for resync, CRC failure, and
	// unknown-kind conditions. Defaults to a no-op logger.
	Logger *zap.Logger `yaml:"-"`
}

// DefaultConfig returns the engine's default tunables: a 4 KiB buffer, the
// full v1-v2 version range, and a no-op logger.
func DefaultConfig() Config {
	return Config{
		BufferCapacity: DefaultBufferCapacity,
		MinVersion:     proto.V1,
		MaxVersion:     proto.V2,
		Logger:         zap.NewNop(),
	}
}

// yamlConfig mirrors Config's YAML-facing fields only; Logger is never
// loaded from a file.
type yamlConfig struct {
	BufferCapacity int           `yaml:"buffer_capacity"`
	MinVersion     proto.Version `yaml:"min_version"`
	MaxVersion     proto.Version `yaml:"max_version"`
}

// LoadConfig reads tunables from a YAML file at path, layered over
// DefaultConfig for any field the file omits. A file is never required:
// callers that don't need one can use DefaultConfig directly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("stream: read config: %w", err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Config{}, fmt.Errorf("stream: parse config: %w", err)
	}

	if y.BufferCapacity > 0 {
		cfg.BufferCapacity = y.BufferCapacity
	}
	if y.MinVersion != 0 {
		cfg.MinVersion = y.MinVersion
	}
	if y.MaxVersion != 0 {
		cfg.MaxVersion = y.MaxVersion
	}
	if !cfg.MinVersion.IsValid() || !cfg.MaxVersion.IsValid() || cfg.MinVersion > cfg.MaxVersion {
		return Config{}, fmt.Errorf("stream: config: invalid version range [%s, %s]", cfg.MinVersion, cfg.MaxVersion)
	}
	return cfg, nil
}
