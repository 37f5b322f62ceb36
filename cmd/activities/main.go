// Package main запускает API кружков Mergington High School и клиентские команды к нему.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"activities-signup/internal/config"
)

// errReported означает, что причина уже показана пользователю.
var errReported = errors.New("command failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// app — общее состояние команд: конфигурация и логгер.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "activities",
		Short:         "Mergington High School extracurricular activities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("server") {
				cfg.ServerURL, _ = cmd.Flags().GetString("server")
			}

			level, _ := cfg.SlogLevel()
			a.cfg = cfg
			// Инициализация логгера (JSON)
			a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().String("server", "", "API base URL (overrides ACTIVITIES_SERVER_URL)")

	root.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newSignupCmd(a),
		newRemoveCmd(a),
	)
	return root
}
