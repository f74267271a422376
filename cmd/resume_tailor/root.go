package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-tailor/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "0.0.1"

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	configPath string
	viper      *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{viper: config.NewViper()}

	cmd := &cobra.Command{
		Use:           "resume_tailor",
		Short:         "Resume Tailor API server and CLI",
		Long:          "Resume Tailor extracts keywords from job descriptions, matches them against resumes, scores the fit and tailors the resume text.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is resume-tailor.yaml in the current directory)")
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")
	flags.String("provider", "", "model provider: auto, openai, ollama, gemini or none")
	_ = opts.viper.BindPFlag("log.debug", flags.Lookup("debug"))
	_ = opts.viper.BindPFlag("log.json", flags.Lookup("json"))
	_ = opts.viper.BindPFlag("backend.provider", flags.Lookup("provider"))

	cmd.AddCommand(
		newServeCmd(opts),
		newAnalyzeCmd(opts),
		newKeywordsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
