package commands

import (
	"os"

	"github.com/spf13/pflag"
	"go.trai.ch/mvnrepo/internal/app"
	"go.trai.ch/mvnrepo/internal/core/domain"
)

type globalOptions struct {
	root        string
	defaultFile string
	jsonLogs    bool
	quiet       bool
}

func bindGlobalFlags(fs *pflag.FlagSet, o *globalOptions) {
	fs.StringVar(&o.root, "root", "", "Build root directory (defaults to the working directory)")
	fs.StringVar(&o.defaultFile, "default-file", "",
		"Property file used when none is given (defaults to the manifest's, then local.properties)")
	fs.BoolVar(&o.jsonLogs, "json-logs", false, "Write logs as JSON")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "Only log warnings and errors")
}

type sourceOptions struct {
	file       string
	systemProp []string
}

func bindSourceFlags(fs *pflag.FlagSet, o *sourceOptions) {
	fs.StringVarP(&o.file, "file", "f", "", "Property file, relative to the build root")
	fs.StringArrayVarP(&o.systemProp, "system-prop", "D", nil,
		"System property key=value overriding the property file (repeatable)")
}

func (c *CLI) invocation(names []string, src *sourceOptions) app.Invocation {
	return app.Invocation{
		RootDir:             c.opts.root,
		DefaultPropertyFile: c.opts.defaultFile,
		PropertyFile:        src.file,
		Names:               names,
		SystemProperties:    src.systemProp,
		SystemOpts:          os.Getenv(domain.OptsEnvVar),
	}
}
