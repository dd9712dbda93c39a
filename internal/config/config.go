package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"recruitment-dashboard/internal/pipeline"
)

// DefaultEnvFiles are loaded, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.local"}

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DataOptions struct {
	Path            string   `env:"DASHBOARD_DATA_PATH" envDefault:"data/DB_BI_AMK_AKP.xlsx"`
	SourceType      string   `env:"DASHBOARD_SOURCE_TYPE"`
	Sheet           string   `env:"DASHBOARD_SHEET"`
	SQLiteTable     string   `env:"DASHBOARD_SQLITE_TABLE" envDefault:"recruitment"`
	KPIAgencies     []string `env:"DASHBOARD_KPI_AGENCIES" envDefault:"AMK,AKP" envSeparator:","`
	KeepEmptyGroups bool     `env:"DASHBOARD_KEEP_EMPTY_GROUPS" envDefault:"false"`
	RegionSort      string   `env:"DASHBOARD_REGION_SORT" envDefault:"first_seen"`
}

// Source resolves the configured source, inferring the type from the path
// extension when DASHBOARD_SOURCE_TYPE is empty.
func (d DataOptions) Source() (pipeline.Source, error) {
	src := pipeline.Source{Path: d.Path, Sheet: d.Sheet, Table: d.SQLiteTable}
	var err error
	if strings.TrimSpace(d.SourceType) == "" {
		src.Type, err = pipeline.DetectSourceType(d.Path)
	} else {
		src.Type, err = pipeline.ParseSourceType(d.SourceType)
	}
	return src, err
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/metrics"`
}

type Configuration struct {
	Data       DataOptions
	Prometheus PrometheusOptions

	ServerPort         int           `env:"PORT" envDefault:"8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SwaggerEnabled     bool          `env:"SWAGGER_ENABLED" envDefault:"true"`

	logger *logrus.Logger
}

// Load reads the env files that exist, parses the environment and builds
// the logger.
func Load(envFiles []string) (*Configuration, error) {
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, errors.Wrap(err, "load env files")
	}
	c := &Configuration{}
	if err := env.Parse(c); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.logger = newLogger(c.LogrusLogLevel(), c.LogFormat)
	return c, nil
}

func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return errors.New("DASHBOARD_DATA_PATH must not be empty")
	}
	if _, err := c.Data.Source(); err != nil {
		return errors.Wrap(err, "data source")
	}
	if len(c.KPIAgencies()) == 0 {
		return errors.New("DASHBOARD_KPI_AGENCIES must list at least one agency")
	}
	if _, ok := pipeline.ParseSortMode(c.Data.RegionSort); !ok {
		return errors.Errorf("DASHBOARD_REGION_SORT: unknown mode %q", c.Data.RegionSort)
	}
	if c.SessionTTL <= 0 {
		return errors.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return errors.Errorf("PORT out of range: %d", c.ServerPort)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("LOG_FORMAT must be 'text' or 'json', got '%s'", c.LogFormat)
	}
	return nil
}

// KPIAgencies returns the configured agencies with blanks dropped.
func (c *Configuration) KPIAgencies() []string {
	var out []string
	for _, a := range c.Data.KPIAgencies {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// DashboardOptions maps the configuration onto pipeline build options.
func (c *Configuration) DashboardOptions() pipeline.Options {
	mode, _ := pipeline.ParseSortMode(c.Data.RegionSort)
	return pipeline.Options{
		KPIAgencies:     c.KPIAgencies(),
		KeepEmptyGroups: c.Data.KeepEmptyGroups,
		RegionSort:      mode,
		Logger:          c.Logger(),
	}
}

func (c *Configuration) Address() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

func (c *Configuration) Logger() *logrus.Logger {
	if c.logger == nil {
		c.logger = newLogger(c.LogrusLogLevel(), c.LogFormat)
	}
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch strings.ToLower(c.LogLevel) {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func newLogger(level logrus.Level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
