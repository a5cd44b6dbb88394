package commands

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	unnamed = "<unnamed>"
	unset   = "<unset>"
	masked  = "********"
)

var errUnknownFormat = zerr.New("unknown output format")

func (c *CLI) newResolveCmd() *cobra.Command {
	var src sourceOptions
	var format string

	cmd := &cobra.Command{
		Use:   "resolve [names...]",
		Short: "Show the resolved configuration of Maven repositories",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := c.app.Resolve(cmd.Context(), c.invocation(args, &src))
			if err != nil {
				return err
			}
			return writeConfigs(cmd.OutOrStdout(), configs, format)
		},
	}

	bindSourceFlags(cmd.Flags(), &src)
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

type valueView struct {
	Value  *string `json:"value,omitempty" yaml:"value,omitempty"`
	Source string  `json:"source" yaml:"source"`
}

type configView struct {
	Name         *string   `json:"name,omitempty" yaml:"name,omitempty"`
	PropertyFile string    `json:"propertyFile" yaml:"propertyFile"`
	URL          valueView `json:"url" yaml:"url"`
	Username     valueView `json:"username" yaml:"username"`
	Password     valueView `json:"password" yaml:"password"`
}

func newConfigView(cfg domain.ResolvedRepoConfig) configView {
	password := valueView{Source: cfg.Password.Source.String()}
	if cfg.Password.Value.IsPresent() {
		m := masked
		password.Value = &m
	}

	return configView{
		Name:         cfg.Name.Ptr(),
		PropertyFile: cfg.PropertyFile,
		URL:          valueView{Value: cfg.URL.Value.Ptr(), Source: cfg.URL.Source.String()},
		Username:     valueView{Value: cfg.Username.Value.Ptr(), Source: cfg.Username.Source.String()},
		Password:     password,
	}
}

func writeConfigs(w io.Writer, configs []domain.ResolvedRepoConfig, format string) error {
	views := make([]configView, len(configs))
	for i, cfg := range configs {
		views[i] = newConfigView(cfg)
	}

	switch format {
	case "text":
		writeTable(w, views)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	default:
		return zerr.With(zerr.Wrap(errUnknownFormat, "cannot write resolved repositories"), "format", format)
	}
}

func writeTable(w io.Writer, views []configView) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Repository", "Property", "Value", "Source"})

	for _, v := range views {
		name := unnamed
		if v.Name != nil {
			name = *v.Name
		}
		t.AppendRow(table.Row{name, "url", display(v.URL.Value), v.URL.Source})
		t.AppendRow(table.Row{name, "username", display(v.Username.Value), v.Username.Source})
		t.AppendRow(table.Row{name, "password", display(v.Password.Value), v.Password.Source})
		t.AppendSeparator()
	}

	t.Render()
}

func display(v *string) string {
	if v == nil {
		return unset
	}
	return *v
}
