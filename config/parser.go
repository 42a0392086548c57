package config

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config describes an application whose settings can be read
// from flags, the environment and a configuration file
type Config interface {
	Use() string
	EnvPrefix() string
	Binders() []Binder
}

// Binder declares the flags for one group of settings and reads
// them back once all the sources have been resolved
type Binder interface {
	// Bind declares flags on cmd and defaults on v
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the resolved values from v
	Configure(v *viper.Viper) error
}

type Parser struct {
	Config Config

	file *ConfigFile

	cmd    *cobra.Command
	v      *viper.Viper
	parsed bool
}

// Parse resolves the configuration from args, the environment and
// the configuration file, in that order of precedence
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}
	p.parsed = true

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Args returns the positional arguments left after parsing
func (p *Parser) Args() []string {
	return p.cmd.PersistentFlags().Args()
}

// Usage writes the flags the parser accepts to w
func (p *Parser) Usage(w io.Writer) error {
	p.cmd.SetOut(w)
	return p.cmd.Usage()
}

// Generate creates a Parser for config. Environment variables are
// read with the config's prefix, with `.` and `-` in keys replaced
// by `_`
func Generate(config Config) (*Parser, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: config.Use()}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
