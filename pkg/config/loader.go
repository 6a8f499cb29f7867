package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/report"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SORTIE_"

// LoadOptions selects where configuration is read from. An explicit
// ConfigFile must exist; the default location is optional.
type LoadOptions struct {
	ConfigFile string
	Paths      *paths.Paths
}

// Load builds the effective configuration: embedded defaults, then the user
// config file, then SORTIE_ environment variables
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	p := opts.Paths
	if p == nil {
		var err error
		if p, err = paths.New(); err != nil {
			return nil, err
		}
	}

	// 2. User config file
	configPath := paths.ExpandHome(opts.ConfigFile)
	required := configPath != ""
	if !required {
		configPath = p.ConfigFile()
	}

	var source string
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").
				WithDetail("path", configPath)
		}
		source = configPath
	} else if required {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").
			WithDetail("path", configPath)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	cfg.source = source

	// 5. Post-process
	if err := postProcess(&cfg, p); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", source).
		Str("rulesFile", cfg.Rules.File).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

func postProcess(cfg *Config, p *paths.Paths) error {
	var err error
	if cfg.Organize.DefaultDestination, err = paths.Normalize(cfg.Organize.DefaultDestination); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid organize.default_destination")
	}
	if cfg.Organize.Sources, err = paths.NormalizeAll(cfg.Organize.Sources); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid organize.sources")
	}
	if cfg.Rules.File, err = paths.Normalize(cfg.Rules.File); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid rules.file")
	}
	if cfg.Rules.File == "" {
		cfg.Rules.File = p.RulesFile()
	}
	if cfg.Keywords.File, err = paths.Normalize(cfg.Keywords.File); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid keywords.file")
	}
	if cfg.Logging.Dir, err = paths.Normalize(cfg.Logging.Dir); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid logging.dir")
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}
	cfg.Output.Format = format.String()
	return nil
}
