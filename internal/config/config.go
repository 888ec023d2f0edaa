// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Scorer ScorerConfig `yaml:"scorer" mapstructure:"scorer"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the three input dataset directories. Each directory
// holds one or more CSV files that are concatenated on load. The per-dataset
// dirs default to <dir>/enrolment, <dir>/biometric, <dir>/demographic.
type DataConfig struct {
	Dir            string `yaml:"dir" mapstructure:"dir"`
	EnrolmentDir   string `yaml:"enrolment_dir" mapstructure:"enrolment_dir"`
	BiometricDir   string `yaml:"biometric_dir" mapstructure:"biometric_dir"`
	DemographicDir string `yaml:"demographic_dir" mapstructure:"demographic_dir"`
}

// OutputConfig configures where result artifacts are written.
type OutputConfig struct {
	Dir        string `yaml:"dir" mapstructure:"dir"`
	SkipCharts bool   `yaml:"skip_charts" mapstructure:"skip_charts"`
}

// ScorerConfig holds the composite-score weights, normalization constants,
// and archetype thresholds.
type ScorerConfig struct {
	// Pillar weights (sum = 1).
	IDIWeight float64 `yaml:"idi_weight" mapstructure:"idi_weight"`
	GCIWeight float64 `yaml:"gci_weight" mapstructure:"gci_weight"`
	TCSWeight float64 `yaml:"tcs_weight" mapstructure:"tcs_weight"`
	YIRWeight float64 `yaml:"yir_weight" mapstructure:"yir_weight"`
	UBIWeight float64 `yaml:"ubi_weight" mapstructure:"ubi_weight"`

	// Normalization constants.
	UBIIdeal float64 `yaml:"ubi_ideal" mapstructure:"ubi_ideal"`
	YIRCap   float64 `yaml:"yir_cap" mapstructure:"yir_cap"`

	// Archetype thresholds, tested in classifier rule order.
	YouthExclusionYIR float64 `yaml:"youth_exclusion_yir" mapstructure:"youth_exclusion_yir"`
	ImbalanceUBILow   float64 `yaml:"imbalance_ubi_low" mapstructure:"imbalance_ubi_low"`
	ImbalanceUBIHigh  float64 `yaml:"imbalance_ubi_high" mapstructure:"imbalance_ubi_high"`
	GeoExclusionGCI   float64 `yaml:"geo_exclusion_gci" mapstructure:"geo_exclusion_gci"`
	SleepwalkerTCS    float64 `yaml:"sleepwalker_tcs" mapstructure:"sleepwalker_tcs"`
	SleepwalkerHealth float64 `yaml:"sleepwalker_health" mapstructure:"sleepwalker_health"`
	SprinterIDI       float64 `yaml:"sprinter_idi" mapstructure:"sprinter_idi"`
	SprinterHealth    float64 `yaml:"sprinter_health" mapstructure:"sprinter_health"`
	LeaderHealth      float64 `yaml:"leader_health" mapstructure:"leader_health"`
	LeaderTCS         float64 `yaml:"leader_tcs" mapstructure:"leader_tcs"`
	LeaderGCI         float64 `yaml:"leader_gci" mapstructure:"leader_gci"`
	LeaderYIR         float64 `yaml:"leader_yir" mapstructure:"leader_yir"`
}

// ReportConfig configures report generation.
type ReportConfig struct {
	TopN int `yaml:"top_n" mapstructure:"top_n"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AADHAAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.enrolment_dir", "")
	v.SetDefault("data.biometric_dir", "")
	v.SetDefault("data.demographic_dir", "")
	v.SetDefault("output.dir", "outputs")
	v.SetDefault("output.skip_charts", false)
	v.SetDefault("report.top_n", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("scorer.idi_weight", 0.25)
	v.SetDefault("scorer.gci_weight", 0.25)
	v.SetDefault("scorer.tcs_weight", 0.20)
	v.SetDefault("scorer.yir_weight", 0.20)
	v.SetDefault("scorer.ubi_weight", 0.10)
	v.SetDefault("scorer.ubi_ideal", 0.425)
	v.SetDefault("scorer.yir_cap", 1.5)
	v.SetDefault("scorer.youth_exclusion_yir", 0.6)
	v.SetDefault("scorer.imbalance_ubi_low", 0.25)
	v.SetDefault("scorer.imbalance_ubi_high", 0.65)
	v.SetDefault("scorer.geo_exclusion_gci", 0.6)
	v.SetDefault("scorer.sleepwalker_tcs", 0.4)
	v.SetDefault("scorer.sleepwalker_health", 40)
	v.SetDefault("scorer.sprinter_idi", 0.03)
	v.SetDefault("scorer.sprinter_health", 70)
	v.SetDefault("scorer.leader_health", 70)
	v.SetDefault("scorer.leader_tcs", 0.6)
	v.SetDefault("scorer.leader_gci", 0.4)
	v.SetDefault("scorer.leader_yir", 0.8)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
