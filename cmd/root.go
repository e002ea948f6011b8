// Package cmd provides the contact command-line interface.
//
// Settings resolve from flags, then CONTACT_* environment variables (PORT is
// also honoured), then an optional config file given with --config.
package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fluidity-money/contact/internal/config"
)

// Build carries what main embeds into the binary.
type Build struct {
	Version   string
	Templates fs.FS
	Static    fs.FS
}

func Execute(b Build) error {
	return NewRootCmd(b, viper.New()).Execute()
}

func NewRootCmd(b Build, v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "contact",
		Short:        "Serve and render the Contact section",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.SetDefaults(v)
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
				}
			}
			level, err := config.ParseLevel(v.GetString("log_level"))
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newServeCmd(b, v),
		newRenderCmd(),
		newVersionCmd(b),
	)

	return root
}
