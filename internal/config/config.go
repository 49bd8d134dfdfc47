// Package config loads runtime settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Config holds every setting of the web and SSH front ends.
type Config struct {
	Port         int           `mapstructure:"port"`
	GinMode      string        `mapstructure:"gin-mode"`
	ImagesDir    string        `mapstructure:"images-dir"`
	StaticDir    string        `mapstructure:"static-dir"`
	ContentPath  string        `mapstructure:"content-path"`
	TypeSpeed    time.Duration `mapstructure:"type-speed"`
	DeleteSpeed  time.Duration `mapstructure:"delete-speed"`
	Pause        time.Duration `mapstructure:"pause"`
	ContactDelay time.Duration `mapstructure:"contact-delay"`

	SSHEnabled     bool          `mapstructure:"ssh-enabled"`
	SSHHost        string        `mapstructure:"ssh-host"`
	SSHPort        int           `mapstructure:"ssh-port"`
	SSHHostKeyPath string        `mapstructure:"ssh-host-key-path"`
	SSHIdleTimeout time.Duration `mapstructure:"ssh-idle-timeout"`
	SSHMaxSessions int           `mapstructure:"ssh-max-sessions"`
	SSHRateLimit   int           `mapstructure:"ssh-rate-limit"`
	SSHRateBurst   int           `mapstructure:"ssh-rate-burst"`

	ConfigPath string `mapstructure:"-"`
}

// Timing returns the typewriter speeds.
func (c Config) Timing() typewriter.Timing {
	return typewriter.Timing{Type: c.TypeSpeed, Delete: c.DeleteSpeed, Pause: c.Pause}
}

// Addr is the web listen address.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// SSHAddr is the SSH listen address.
func (c Config) SSHAddr() string {
	return net.JoinHostPort(c.SSHHost, strconv.Itoa(c.SSHPort))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("gin-mode", "")
	v.SetDefault("images-dir", "./images")
	v.SetDefault("static-dir", "./static")
	v.SetDefault("content-path", "")
	v.SetDefault("type-speed", typewriter.DefaultTiming.Type)
	v.SetDefault("delete-speed", typewriter.DefaultTiming.Delete)
	v.SetDefault("pause", typewriter.DefaultTiming.Pause)
	v.SetDefault("contact-delay", 1200*time.Millisecond)

	v.SetDefault("ssh-enabled", false)
	v.SetDefault("ssh-host", "0.0.0.0")
	v.SetDefault("ssh-port", 2222)
	v.SetDefault("ssh-host-key-path", ".data/host_ed25519")
	v.SetDefault("ssh-idle-timeout", 2*time.Minute)
	v.SetDefault("ssh-max-sessions", 32)
	v.SetDefault("ssh-rate-limit", 30)
	v.SetDefault("ssh-rate-burst", 10)
}

// Load reads configuration. Environment variables use the key with dashes
// as underscores (PORT, SSH_PORT, TYPE_SPEED, ...). A missing config file
// is not an error.
func Load(configPath string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.SSHPort <= 0 || c.SSHPort > 65535 {
		return fmt.Errorf("invalid ssh-port: %d", c.SSHPort)
	}
	if c.TypeSpeed <= 0 || c.DeleteSpeed <= 0 || c.Pause <= 0 {
		return fmt.Errorf("typewriter speeds must be positive: type=%s delete=%s pause=%s", c.TypeSpeed, c.DeleteSpeed, c.Pause)
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("invalid contact-delay: %s", c.ContactDelay)
	}
	if c.SSHMaxSessions <= 0 {
		return fmt.Errorf("invalid ssh-max-sessions: %d", c.SSHMaxSessions)
	}
	return nil
}
