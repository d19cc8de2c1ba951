package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

// StructuredFileConfig is the on-disk layout of a configuration file. The
// "environment" section has exactly the shape of the front-end record, so
// the output of `envgen -format json` can be pasted into it unchanged.
type StructuredFileConfig struct {
	App struct {
		Variant  string `json:"variant"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Environment struct {
		Production   *bool  `json:"production"`
		APIServerURL string `json:"apiServerUrl"`
		Auth0        struct {
			URL         string `json:"url"`
			Audience    string `json:"audience"`
			ClientID    string `json:"clientId"`
			CallbackURL string `json:"callbackURL"`
		} `json:"auth0"`
	} `json:"environment,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Render struct {
		Format        string `json:"format"`
		OutputPath    string `json:"output"`
		CheckProvider *bool  `json:"check_provider"`
	} `json:"render,omitempty"`
}

// parseFile reads a JSON or YAML configuration file. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		err = json.Unmarshal(data, &fileCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	cfg := &StructuredConfig{
		App: App{
			Variant:  fileCfg.App.Variant,
			Version:  fileCfg.App.Version,
			LogLevel: fileCfg.App.LogLevel,
		},
		Frontend: Frontend{
			Production:   fileCfg.Environment.Production,
			APIServerURL: fileCfg.Environment.APIServerURL,
			Auth0: Auth0{
				URL:         fileCfg.Environment.Auth0.URL,
				Audience:    fileCfg.Environment.Auth0.Audience,
				ClientID:    fileCfg.Environment.Auth0.ClientID,
				CallbackURL: fileCfg.Environment.Auth0.CallbackURL,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Render: Render{
			Format:        fileCfg.Render.Format,
			OutputPath:    fileCfg.Render.OutputPath,
			CheckProvider: fileCfg.Render.CheckProvider,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
