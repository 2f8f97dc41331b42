package main

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"

	"github.com/3ok/huunq"
	"github.com/3ok/huunq/config"
)

const (
	configDir      = ".huunq"
	configFile     = "config"
	configType     = "yaml"
	envPrefix      = "HUUNQ"
	keyringService = "huunq"
)

var errNoAddress = errors.New("either --dsn or --port is required")

type settings struct {
	DSN        string        `mapstructure:"dsn"`
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	User       string        `mapstructure:"user"`
	Password   string        `mapstructure:"password"`
	Timeout    time.Duration `mapstructure:"timeout"`
	TLS        bool          `mapstructure:"tls"`
	Unix       bool          `mapstructure:"unix"`
	ParamStyle string        `mapstructure:"paramstyle"`
	ArraySize  int           `mapstructure:"arraysize"`
	Format     string        `mapstructure:"format"`
	LogLevel   string        `mapstructure:"log-level"`
	LogFormat  string        `mapstructure:"log-format"`
	Parallel   int           `mapstructure:"parallel"`
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("huunq", pflag.ContinueOnError)
	flags.String("config", "", "config file (default ~/"+configDir+"/"+configFile+"."+configType+")")
	flags.String("dsn", "", "data source name, kdb[s]://user:password@host:port?param=value")
	flags.String("host", config.DefaultHost, "q process host")
	flags.Int("port", 0, "q process port")
	flags.StringP("user", "u", "", "user name")
	flags.StringP("password", "p", "", "password, looked up in the OS keyring when empty")
	flags.Duration("timeout", 0, "socket timeout, 0 means none")
	flags.Bool("tls", false, "connect with TLS")
	flags.Bool("unix", false, "connect through the unix domain socket")
	flags.String("paramstyle", huunq.ParamStyle().String(), "placeholder style: qmark, numeric, named, format or pyformat")
	flags.Int("arraysize", 100, "rows fetched per batch")
	flags.StringP("format", "f", formatTable, "output format: table, csv or markdown")
	flags.String("log-level", "quiet", "log level: trace, debug, info, warn, error, fatal or quiet")
	flags.String("log-format", logFormatZap, "log format: zap or text")
	flags.Int("parallel", 1, "number of queries run at once")

	return flags
}

// loadSettings merges flags, HUUNQ_* environment variables and the config
// file, in that order of precedence. It returns the positional arguments as
// queries.
func loadSettings(args []string, home string) (*settings, []string, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, nil, err
	}

	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFile)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(home, configDir))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, err
		}
	}

	s := &settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, nil, err
	}

	return s, flags.Args(), nil
}

func (s *settings) address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// password returns the configured password or the one stored in the OS
// keyring for user@host:port.
func (s *settings) password() (string, error) {
	if s.Password != "" || s.User == "" {
		return s.Password, nil
	}
	password, err := keyring.Get(keyringService, s.User+"@"+s.address())
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}

	return password, err
}

func (s *settings) options() ([]huunq.Option, error) {
	if s.DSN != "" {
		return []huunq.Option{
			huunq.WithConnectionString(s.DSN),
			huunq.WithArraySize(s.ArraySize),
		}, nil
	}
	if s.Port == 0 && !s.Unix {
		return nil, errNoAddress
	}
	password, err := s.password()
	if err != nil {
		return nil, err
	}

	return []huunq.Option{
		huunq.WithHost(s.Host),
		huunq.WithPort(s.Port),
		huunq.WithCredentials(s.User, password),
		huunq.WithTimeout(s.Timeout),
		huunq.WithTLS(s.TLS),
		huunq.WithUnix(s.Unix),
		huunq.WithArraySize(s.ArraySize),
	}, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return home
}
