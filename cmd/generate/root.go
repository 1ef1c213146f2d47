package main

import (
	"os"
	"os/signal"
	"syscall"

	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/cmd/generate/services"
	"prompt-references/cmd/internal/httpclient"
	"prompt-references/cmd/internal/logger"
	"prompt-references/cmd/internal/trace"
	"prompt-references/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseDir  string
	outDir   string
	skillMD  string
	logLevel string
	dryRun   bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "generate-references",
		Short: "Generate prompt reference JSON files from the CMS",
		Long: `Fetches prompt categories and prompts from the CMS, groups them into
featured / use-case / others buckets, writes one JSON file per bucket
into the references directory and refreshes the table between the
REFERENCES markers in SKILL.md.

Requires CMS_HOST and CMS_API_KEY (environment or .env next to config.yaml).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.baseDir, "base-dir", "", "directory containing config.yaml and .env (default: searched upwards from cwd)")
	flags.StringVar(&opts.outDir, "out", "", "references output directory (overrides output.references_dir)")
	flags.StringVar(&opts.skillMD, "skill-md", "", "markdown file to update (overrides output.skill_md)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "fetch and group prompts without touching any file")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := config.Load(opts.baseDir)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	logger.Init(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.CMS.TimeoutDuration()
	if err != nil {
		return err
	}

	refsDir := cfg.ResolvePath(cfg.Output.ReferencesDir)
	if opts.outDir != "" {
		refsDir = opts.outDir
	}
	skillMD := cfg.ResolvePath(cfg.Output.SkillMD)
	if opts.skillMD != "" {
		skillMD = opts.skillMD
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, runID := trace.WithRun(ctx)

	logger.InfoWithFields("starting reference generation", logger.Fields{
		"run_id":         runID,
		"cms_host":       cfg.CMSHost,
		"model":          cfg.CMS.Model,
		"campaign":       cfg.CMS.Campaign,
		"references_dir": refsDir,
		"skill_md":       skillMD,
		"dry_run":        opts.dryRun,
	})

	client := cmsclient.New(cfg.CMSHost, cfg.CMSAPIKey,
		cmsclient.WithHTTPClient(httpclient.New(httpclient.Config{Timeout: timeout})))

	svc := services.NewReferenceService(client, services.GenerateOptions{
		CMS:           cfg.CMS,
		ReferencesDir: refsDir,
		SkillMDPath:   skillMD,
		DryRun:        opts.dryRun,
	})
	_, err = svc.Generate(ctx)
	return err
}
