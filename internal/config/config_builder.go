package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 6),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withDotEnv puts the .env layer in front of the layers collected so far.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.lastNonEmpty(func(cfg *StructuredConfig) string { return cfg.DotEnvPath })
	if path == "" {
		return b
	}

	dotEnvCfg, err := parseDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append([]*StructuredConfig{dotEnvCfg}, b.configs...)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	path := b.lastNonEmpty(func(cfg *StructuredConfig) string { return cfg.FilePath })
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

// withVariant puts the built-in defaults at the bottom of the stack. It must
// run after every other layer so the variant can be chosen by any of them.
func (b *configBuilder) withVariant() *configBuilder {
	name := b.lastNonEmpty(func(cfg *StructuredConfig) string { return cfg.App.Variant })
	if name == "" {
		name = VariantDevelopment
	}

	variantCfg, err := variantDefaults(name)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append([]*StructuredConfig{baseDefaults(), variantCfg}, b.configs...)
	return b
}

func (b *configBuilder) lastNonEmpty(get func(cfg *StructuredConfig) string) string {
	var value string
	for _, cfg := range b.configs {
		if v := get(cfg); v != "" {
			value = v
		}
	}

	return value
}
