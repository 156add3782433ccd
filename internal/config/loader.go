package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "FITSIZER_"

// EnvConfigPath names the variable holding a config file path when none is passed explicitly
const EnvConfigPath = EnvPrefix + "CONFIG"

// Load builds Settings by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Defaults())
//  2. file (YAML) from path, or FITSIZER_CONFIG when path is empty
//  3. env (prefix FITSIZER_, "__" separates nested keys)
func Load(ctx context.Context, path string) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := Defaults()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// FITSIZER_REVENUE_TARGET -> revenue_target, FITSIZER_SERVER__ADDR -> server.addr
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoadConfig, err)
	}

	// Lists and maps given by a layer replace the defaults instead of merging into them.
	cfg := *base
	if k.Exists("subscriptions") {
		cfg.Subscriptions = nil
	}
	if k.Exists("scenarios") {
		cfg.Scenarios = nil
	}
	if k.Exists("competitors") {
		cfg.Competitors = nil
	}
	if k.Exists("inputs.mix") {
		cfg.Inputs.Mix = nil
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := NewInputParser().ValidateSettings(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
