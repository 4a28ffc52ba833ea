package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	site "github.com/ShotaGhoona/starup-hp"
	exportcmd "github.com/ShotaGhoona/starup-hp/internal/commands/export"
	"github.com/ShotaGhoona/starup-hp/internal/di"
	"github.com/ShotaGhoona/starup-hp/internal/markdown"
	"github.com/ShotaGhoona/starup-hp/internal/runtimeconfig"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

type app struct {
	out    io.Writer
	viper  *viper.Viper
	extra  []di.Option
	format outputFormat

	cfgFile  string
	envFiles []string
	output   string

	cfg    site.Config
	env    *runtimeconfig.Env
	module *site.Module
}

func newApp(out io.Writer, extra ...di.Option) *app {
	return &app{out: out, viper: viper.New(), extra: extra}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitecontent",
		Short: "Read, render and export site news and job postings",
		Long: `sitecontent reads the news and job posting collections from the
workspace, converts each record's block content to markup and prints it,
renders local markup files to HTML, or exports everything as front-matter
files.

Collection ids come from WORKSPACE_NEWS_COLLECTION_ID and
WORKSPACE_JOBS_COLLECTION_ID (or the keys configured under collections).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./sitecontent.yaml)")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", []string{".env"}, "dotenv files; earlier files win")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", string(formatYAML), "output format: yaml or json")

	root.AddCommand(
		a.collectionCmd("news", "List or show news posts", a.listNews, a.showNews),
		a.collectionCmd("jobs", "List or show job postings", a.listJobs, a.showJob),
		a.renderCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) setup() error {
	format, err := parseOutputFormat(a.output)
	if err != nil {
		return err
	}
	a.format = format

	env, err := runtimeconfig.LoadEnv(a.envFiles...)
	if err != nil {
		return err
	}
	a.env = env

	cfg, err := loadConfig(a.viper, a.cfgFile, env)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// loadModule builds the module on first use so that render works without
// workspace credentials.
func (a *app) loadModule() (*site.Module, error) {
	if a.module != nil {
		return a.module, nil
	}
	opts := append([]di.Option{di.WithLookup(a.env.Lookup)}, a.extra...)
	module, err := site.New(a.cfg, opts...)
	if err != nil {
		return nil, err
	}
	a.module = module
	return module, nil
}

func (a *app) collectionCmd(name, short string, list func(context.Context) error, show func(context.Context, string) error) *cobra.Command {
	cmd := &cobra.Command{Use: name, Short: short}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every record, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return list(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "show <record-id>",
			Short: "Show one record with its body",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return show(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func (a *app) listNews(ctx context.Context) error {
	module, err := a.loadModule()
	if err != nil {
		return err
	}
	items, err := module.Content().ListNews(ctx)
	if err != nil {
		return err
	}
	return writeOutput(a.out, a.format, items)
}

func (a *app) showNews(ctx context.Context, id string) error {
	module, err := a.loadModule()
	if err != nil {
		return err
	}
	item, err := module.Content().GetNews(ctx, id)
	if err != nil {
		return err
	}
	return a.writeRecord(item, item.Body)
}

func (a *app) listJobs(ctx context.Context) error {
	module, err := a.loadModule()
	if err != nil {
		return err
	}
	items, err := module.Content().ListJobs(ctx)
	if err != nil {
		return err
	}
	return writeOutput(a.out, a.format, items)
}

func (a *app) showJob(ctx context.Context, id string) error {
	module, err := a.loadModule()
	if err != nil {
		return err
	}
	item, err := module.Content().GetJob(ctx, id)
	if err != nil {
		return err
	}
	return a.writeRecord(item, item.Body)
}

// writeRecord prints JSON with the body fields inline; YAML output uses the
// same front-matter document the export writes.
func (a *app) writeRecord(record any, body string) error {
	if a.format == formatJSON {
		return writeOutput(a.out, a.format, record)
	}
	data, err := exportcmd.Document(record, body)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}

func (a *app) renderCmd() *cobra.Command {
	var bodyOnly bool
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a local markup file to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			r := a.cfg.Markdown.Renderer
			renderer := markdown.NewRenderer(interfaces.RenderOptions{
				Extensions: r.Extensions,
				Sanitize:   r.Sanitize,
				HardWraps:  r.HardWraps,
				SafeMode:   r.SafeMode,
			})

			fm, body, err := markdown.ParseFrontMatter(source)
			if err != nil {
				return err
			}
			html, err := renderer.Render(body)
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if bodyOnly {
				_, err = a.out.Write(html)
				return err
			}
			return writeOutput(a.out, a.format, map[string]any{
				"title": fm.Title,
				"slug":  fm.Slug,
				"html":  string(html),
			})
		},
	}
	cmd.Flags().BoolVar(&bodyOnly, "body-only", false, "print only the rendered HTML")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var msg exportcmd.ExportCommand
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every record as a front-matter markup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := a.loadModule()
			if err != nil {
				return err
			}
			handler := module.Export()
			sub := dispatcher.SubscribeCommand(handler)
			defer sub.Unsubscribe()

			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return writeOutput(a.out, a.format, map[string]any{
				"dry_run": msg.DryRun,
				"files":   handler.Summary().Files,
			})
		},
	}
	cmd.Flags().StringVar(&msg.Directory, "dir", "", "output directory")
	cmd.Flags().StringSliceVar(&msg.Collections, "collections", nil, "collections to export: news, jobs (default both)")
	cmd.Flags().BoolVar(&msg.DryRun, "dry-run", false, "fetch and render without writing files")
	return cmd
}
