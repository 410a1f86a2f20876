package mansion

import (
	"os"
	"path/filepath"

	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/config"
	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type DoCommand func(ctx *Context)

type Context struct {
	App      *kingpin.Application
	Commands map[string]DoCommand

	// Root is the project root, relative paths are resolved against it
	Root string

	// ConfigPath points to the optional project config file
	ConfigPath string

	// Protocol is the protocol description path, as given on the command line
	Protocol string

	// Bridge overrides the bridge name used in filenames and identifiers
	Bridge string

	// Lang is the raw, comma-separated --lang value
	Lang string

	// All requests every supported target
	All bool

	// Out is the raw --out value
	Out string

	// VersionString is the complete version string
	VersionString string

	// Quiet silences all output
	Quiet bool

	// Verbose enables chatty output
	Verbose bool

	// JSON enables JSON-lines output
	JSON bool
}

func NewContext(app *kingpin.Application) *Context {
	return &Context{
		App:      app,
		Commands: make(map[string]DoCommand),
	}
}

func (ctx *Context) Register(clause *kingpin.CmdClause, do DoCommand) {
	ctx.Commands[clause.FullCommand()] = do
}

func (ctx *Context) Must(err error) {
	if err != nil {
		if ctx.Verbose || ctx.JSON {
			comm.Dief("%+v", err)
		} else {
			comm.Dief("%s", err)
		}
	}
}

// ProjectRoot returns the absolute project root.
func (ctx *Context) ProjectRoot() (string, error) {
	root := ctx.Root
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return abs, nil
}

// Settings merges the project config file with command-line overrides.
// Flags win over the config file, which wins over defaults.
func (ctx *Context) Settings() (*config.Config, error) {
	root, err := ctx.ProjectRoot()
	if err != nil {
		return nil, err
	}

	configPath := ctx.ConfigPath
	explicit := configPath != ""
	if !explicit {
		configPath = config.DefaultPath
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}

	var cfg *config.Config
	if explicit {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(configPath)
	}
	if err != nil {
		return nil, err
	}

	if ctx.Protocol != "" {
		cfg.Protocol = ctx.Protocol
	}
	if ctx.Bridge != "" {
		cfg.Bridge = ctx.Bridge
	}
	if ctx.Out != "" {
		cfg.Out = ctx.Out
	}
	cfg.Root = root
	return cfg, nil
}

// Consumer returns a state consumer printing through comm.
func (ctx *Context) Consumer() *state.Consumer {
	return comm.NewStateConsumer()
}

// HomeDir returns the invoking user's home directory.
func (ctx *Context) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "determining home directory")
	}
	return home, nil
}
