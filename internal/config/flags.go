package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-variant built-in defaults to start from (development, production)
//	-production front-end production mode (only applied when given)
//	-api-server-url backend API base URL
//	-auth0-url Auth0 tenant domain prefix
//	-auth0-audience Auth0 API audience
//	-auth0-client-id Auth0 client id
//	-auth0-callback-url Auth0 callback URL
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-base-url identity provider base URL override
//	-adapter-timeout identity provider request timeout
//	-format render format (ts, json)
//	-o render output path
//	-check verify the identity provider before rendering
//	-log-level log level
//	-version application version
//	-c/-config JSON or YAML file path with configs
//	-dotenv .env file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var variant, version, logLevel string
	var production bool
	var apiServerURL string
	var auth0URL, auth0Audience, auth0ClientID, auth0CallbackURL string
	var requestTimeout, adapterTimeout time.Duration
	var adapterBaseURL string
	var renderFormat, renderOutput string
	var checkProvider bool
	var filePath, dotEnvPath string

	fs := flag.NewFlagSet("coffee-shop-env", flag.ContinueOnError)

	fs.StringVar(&variant, "variant", "", "Built-in defaults: development or production")
	fs.BoolVar(&production, "production", false, "Front-end production mode")
	fs.StringVar(&apiServerURL, "api-server-url", "", "Backend API base URL")
	fs.StringVar(&auth0URL, "auth0-url", "", "Auth0 tenant domain prefix")
	fs.StringVar(&auth0Audience, "auth0-audience", "", "Auth0 API audience")
	fs.StringVar(&auth0ClientID, "auth0-client-id", "", "Auth0 client id")
	fs.StringVar(&auth0CallbackURL, "auth0-callback-url", "", "Auth0 callback URL")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterBaseURL, "adapter-base-url", "", "Identity provider base URL override")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Identity provider request timeout")
	fs.StringVar(&renderFormat, "format", "", "Render format: ts or json")
	fs.StringVar(&renderOutput, "o", "", "Render output path (stdout when empty)")
	fs.BoolVar(&checkProvider, "check", false, "Verify the identity provider before rendering")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&filePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&filePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&dotEnvPath, "dotenv", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Variant:  variant,
			Version:  version,
			LogLevel: logLevel,
		},
		Frontend: Frontend{
			APIServerURL: apiServerURL,
			Auth0: Auth0{
				URL:         auth0URL,
				Audience:    auth0Audience,
				ClientID:    auth0ClientID,
				CallbackURL: auth0CallbackURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        adapterBaseURL,
			RequestTimeout: adapterTimeout,
		},
		Render: Render{
			Format:     renderFormat,
			OutputPath: renderOutput,
		},
		FilePath:   filePath,
		DotEnvPath: dotEnvPath,
	}

	// unset boolean flags must not override lower layers
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "production":
			cfg.Frontend.Production = &production
		case "check":
			cfg.Render.CheckProvider = &checkProvider
		}
	})

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces), and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
