package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"activities-signup/internal/client"
	"activities-signup/internal/page"
	"activities-signup/internal/signup"
)

func (a *app) newController(cmd *cobra.Command) (*signup.Controller, *client.Client, *signup.TextView, error) {
	api, err := client.New(a.cfg.ServerURL, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	view := signup.NewTextView(cmd.OutOrStdout())
	c := signup.New(api, view, a.logger, signup.WithHideAfter(a.cfg.HideAfter))
	return c, api, view, nil
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show activities with availability and participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, _, err := a.newController(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Load(cmd.Context()); err != nil {
				return errReported
			}
			return nil
		},
	}
}

func newSignupCmd(a *app) *cobra.Command {
	var activity, email string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Sign a student up for an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, _, err := a.newController(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			msg, err := c.Submit(cmd.Context(), activity, email)
			if err != nil || !msg.IsSuccess() {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "activity name")
	cmd.Flags().StringVar(&email, "email", "", "student email")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var activity, email string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a student from an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, api, view, err := a.newController(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			result, ok, err := api.Remove(cmd.Context(), activity, email)
			msg := page.SignupMessage(ok, result)
			if err != nil {
				a.logger.Error("error removing participant",
					slog.String("activity", activity),
					slog.Any("err", err),
				)
				msg = page.Message{Text: "Failed to remove participant. Please try again.", Style: page.StyleError}
			}
			view.ShowMessage(msg)

			if !msg.IsSuccess() {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "activity name")
	cmd.Flags().StringVar(&email, "email", "", "student email")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
