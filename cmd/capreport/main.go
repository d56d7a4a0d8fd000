// Command capreport exports a report document, supplied as JSON, to
// one or more output formats using the derived official-report
// filenames.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mou383251/capreport"
	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/model"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "capreport",
		Short:         "Export workforce-capability report documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "branding config file (yaml)")

	root.AddCommand(exportCommand(&configFile))
	root.AddCommand(copyCommand(&configFile))
	return root
}

func exportCommand(configFile *string) *cobra.Command {
	var (
		formats []string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export <document.json>",
		Short: "Render a document to the requested formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			requested := make([]capreport.Format, 0, len(formats))
			for _, s := range formats {
				f, err := capreport.ParseFormat(s)
				if err != nil {
					return err
				}
				requested = append(requested, f)
			}

			cfg, err := loadBranding(*configFile)
			if err != nil {
				return err
			}

			exp := capreport.New(cfg)
			start := time.Now()
			artifacts, err := exp.ExportAll(doc, requested...)
			if err != nil {
				return err
			}

			for _, a := range artifacts {
				path := filepath.Join(outDir, a.Name)
				if err := os.WriteFile(path, a.Data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				log.Info().Str("file", path).Int("bytes", len(a.Data)).Msg("exported")
			}
			log.Info().Dur("elapsed", time.Since(start)).Int("artifacts", len(artifacts)).Msg("done")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&formats, "format", []string{"pdf"}, "output formats (pdf, docx, xlsx, csv, json)")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

func copyCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <document.json>",
		Short: "Copy the document's first table to the system clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadBranding(*configFile)
			if err != nil {
				return err
			}

			msg, err := capreport.New(cfg).CopyTable(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func loadDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return &doc, nil
}

// loadBranding merges the stock branding with overrides from an
// optional config file and CAPREPORT_* environment variables.
func loadBranding(configFile string) (brand.Config, error) {
	cfg := brand.Default()

	v := viper.New()
	v.SetDefault("organization", cfg.Organization)
	v.SetDefault("custodian", cfg.Custodian)
	v.SetDefault("emblem", cfg.EmblemText)
	v.SetEnvPrefix("CAPREPORT")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return brand.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.Organization = v.GetString("organization")
	cfg.Custodian = v.GetString("custodian")
	cfg.EmblemText = v.GetString("emblem")
	return cfg, nil
}
