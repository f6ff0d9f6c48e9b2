package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JackWReid/redline/internal/config"
	"github.com/JackWReid/redline/internal/log"
	"github.com/JackWReid/redline/spell"
)

var (
	configPath string
	dictPath   string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "redline",
	Short:   "Spell checking and in-place correction for plain text documents",
	Version: Version,
	Long: `redline finds misspelled words in plain text and markdown files and can
apply dictionary suggestions in place. Fenced code blocks are never
touched.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "word list file (one word per line)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/redline/config.yaml"
}

// setup loads configuration, initializes logging, and builds the spell
// checker shared by the subcommands.
func setup() (config.Config, *spell.FuzzyChecker, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, nil, err
	}

	cleanup := func() {}
	if cfg.Log.Path != "" {
		c, err := log.InitFile(cfg.Log.Path, log.ParseLevel(cfg.Log.Level))
		if err != nil {
			return cfg, nil, nil, err
		}
		cleanup = c
	}

	path := dictPath
	if path == "" {
		path = cfg.Dictionary
	}

	var checker *spell.FuzzyChecker
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			cleanup()
			return cfg, nil, nil, err
		}
		defer f.Close()
		checker, err = spell.NewFuzzyCheckerFrom(f)
		if err != nil {
			cleanup()
			return cfg, nil, nil, err
		}
	} else {
		checker = spell.NewFuzzyChecker()
	}

	checker.MinWordLength = cfg.MinWordLength
	checker.SkipAllCaps = cfg.SkipAllCaps
	return cfg, checker, cleanup, nil
}
