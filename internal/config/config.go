package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/aibabysense/landing/internal/errors"
)

const (
	// ConfigFileName is the configuration file looked up in the working
	// directory when no path is given.
	ConfigFileName = "landing.json"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "LANDING"

	// DefaultPort is the default listen port.
	DefaultPort = 8080

	// DefaultHost is the default listen host.
	DefaultHost = "localhost"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`

	// path is the file the config was loaded from, if any.
	path string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`

	// MaxSessions caps concurrent live sessions. 0 means unlimited.
	MaxSessions int `mapstructure:"max_sessions" validate:"gte=0"`

	// AllowedOrigins lists origins allowed to open the WebSocket. Empty
	// allows same-origin requests only.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,url"`

	// DevMode disables caching of the client bundle and assets.
	DevMode bool `mapstructure:"dev_mode"`
}

// SessionConfig contains live session settings.
type SessionConfig struct {
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval" validate:"gt=0"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout" validate:"gtfield=HeartbeatInterval"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	MaxEventQueue     int           `mapstructure:"max_event_queue" validate:"gt=0"`
	MaxMessageSize    int64         `mapstructure:"max_message_size" validate:"gt=0"`
}

// UIConfig tunes the page's interactive behavior.
type UIConfig struct {
	RotateInterval time.Duration `mapstructure:"rotate_interval" validate:"gt=0"`
	RevealMargin   float64       `mapstructure:"reveal_margin" validate:"gt=0"`
}

// AssetsConfig selects where images are served from.
type AssetsConfig struct {
	Source string   `mapstructure:"source" validate:"oneof=dir s3"`
	Dir    string   `mapstructure:"dir" validate:"required_if=Source dir"`
	Cache  string   `mapstructure:"cache" validate:"omitempty,oneof=none production"`
	S3     S3Config `mapstructure:"s3"`
}

// S3Config locates an S3 bucket holding the assets.
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,url"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool              `mapstructure:"enabled"`
	Path      string            `mapstructure:"path" validate:"startswith=/"`
	Namespace string            `mapstructure:"namespace"`
	Labels    map[string]string `mapstructure:"labels"`
}

// defaults holds every key with its default. Registering every key is also
// what lets AutomaticEnv see LANDING_* overrides during Unmarshal.
var defaults = map[string]any{
	"server.host":                DefaultHost,
	"server.port":                DefaultPort,
	"server.read_header_timeout": 10 * time.Second,
	"server.shutdown_timeout":    15 * time.Second,
	"server.max_sessions":        10000,
	"server.allowed_origins":     []string{},
	"server.dev_mode":            false,

	"session.heartbeat_interval": 30 * time.Second,
	"session.read_timeout":       60 * time.Second,
	"session.write_timeout":      10 * time.Second,
	"session.max_event_queue":    256,
	"session.max_message_size":   64 * 1024,

	"ui.rotate_interval": 4 * time.Second,
	"ui.reveal_margin":   100,

	"assets.source":               "dir",
	"assets.dir":                  "public",
	"assets.cache":                "production",
	"assets.s3.bucket":            "",
	"assets.s3.prefix":            "",
	"assets.s3.region":            "",
	"assets.s3.endpoint":          "",
	"assets.s3.use_path_style":    false,
	"assets.s3.access_key_id":     "",
	"assets.s3.secret_access_key": "",

	"log.level":  "info",
	"log.format": "text",

	"metrics.enabled":   true,
	"metrics.path":      "/metrics",
	"metrics.namespace": "landing",
	"metrics.labels":    map[string]string{},
}

// metricName matches a Prometheus namespace or label name.
var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return &cfg
}

// Load reads the configuration. If path is empty, landing.json in the
// working directory is used when present. Environment variables override
// file values. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(ConfigFileName, ".json"))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var parseErr viper.ConfigParseError
		switch {
		case path == "" && stderrors.As(err, &notFound):
			// No file; defaults and environment only.
		case stderrors.As(err, &parseErr):
			return nil, errors.New("E102").WithDetail(v.ConfigFileUsed()).Wrap(err)
		case stderrors.Is(err, fs.ErrNotExist):
			return nil, errors.New("E101").WithDetailf("%s does not exist", path).Wrap(err)
		default:
			return nil, errors.New("E101").WithDetail(path).Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("E104").Wrap(err)
	}
	cfg.path = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string { return c.path }

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their config key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks field ranges and cross-field rules.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			return errors.New("E103").Wrap(err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	if c.Assets.Source == "s3" {
		if c.Assets.S3.Bucket == "" {
			problems = append(problems, "assets.s3.bucket: required when assets.source is s3")
		}
		if c.Assets.S3.Region == "" {
			problems = append(problems, "assets.s3.region: required when assets.source is s3")
		}
	}

	if !metricName.MatchString(c.Metrics.Namespace) {
		problems = append(problems, fmt.Sprintf("metrics.namespace: %q is not a valid metric name", c.Metrics.Namespace))
	}
	for name := range c.Metrics.Labels {
		if !metricName.MatchString(name) || strings.HasPrefix(name, "__") {
			problems = append(problems, fmt.Sprintf("metrics.labels: %q is not a valid label name", name))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("E103").WithDetail(strings.Join(problems, "; "))
}

// describe renders a validation failure as "key: rule".
func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Sprintf("%s: failed %s (got %v)", key, rule, fe.Value())
}
