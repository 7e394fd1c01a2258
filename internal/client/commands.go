// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package client

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/adapter"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

const (
	defaultServerAddress = "http://localhost:3000"
	defaultTimeout       = 15 * time.Second

	// ServerAddressEnv overrides the default --server value.
	ServerAddressEnv = "EASY_TRAVEL_SERVER"
)

type rootOptions struct {
	server      string
	timeout     time.Duration
	sessionPath string
	logLevel    string
}

// app builds an App from the persistent flags.
func (o *rootOptions) app(out io.Writer) (*App, error) {
	log := logger.NewClientLogger("easy-travel-client", o.logLevel)

	api, err := adapter.NewHTTPAPIAdapter(o.server, o.timeout, log)
	if err != nil {
		return nil, err
	}

	path := o.sessionPath
	if path == "" {
		if path, err = DefaultSessionPath(); err != nil {
			return nil, err
		}
	}

	return NewApp(api, NewFileSession(path), out, log), nil
}

// NewRootCommand returns the easy-travel command tree writing its results
// to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "easy-travel",
		Short:         "Easy Travel command line client",
		Long:          "Command line client for the Easy Travel trip and currency-rate API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	server := os.Getenv(ServerAddressEnv)
	if server == "" {
		server = defaultServerAddress
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.server, "server", server, "API base URL (env "+ServerAddressEnv+")")
	flags.DurationVar(&opts.timeout, "timeout", defaultTimeout, "request timeout")
	flags.StringVar(&opts.sessionPath, "session", "", "session file (default <config dir>/easy-travel/session)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		registerCmd(opts, out),
		loginCmd(opts, out),
		logoutCmd(opts, out),
		tripsCmd(opts, out),
		ratesCmd(opts, out),
		latestCmd(opts, out),
		timeseriesCmd(opts, out),
	)

	return root
}

// ─────────────────────────────────────────────
// Auth
// ─────────────────────────────────────────────

func credentialFlags(cmd *cobra.Command, creds *models.Credentials) {
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func registerCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.Register(cmd.Context(), creds)
		},
	}
	credentialFlags(cmd, &creds)

	return cmd
}

func loginCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.Login(cmd.Context(), creds)
		},
	}
	credentialFlags(cmd, &creds)

	return cmd
}

func logoutCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.Logout()
		},
	}
}

// ─────────────────────────────────────────────
// Trips
// ─────────────────────────────────────────────

func tripsCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage your trips",
	}

	cmd.AddCommand(
		listTripsCmd(opts, out),
		showTripCmd(opts, out),
		createTripCmd(opts, out),
		updateTripCmd(opts, out),
		deleteTripCmd(opts, out),
	)

	return cmd
}

func listTripsCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.ListTrips(cmd.Context())
		},
	}
}

func showTripCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTripID(args[0])
			if err != nil {
				return err
			}
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.ShowTrip(cmd.Context(), id)
		},
	}
}

// tripFlags holds the trip field flags shared by create and update.
type tripFlags struct {
	title       string
	location    string
	price       float64
	description string
}

func (f *tripFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "trip title")
	cmd.Flags().StringVar(&f.location, "location", "", "trip location")
	cmd.Flags().Float64Var(&f.price, "price", 0, "trip price in USD")
	cmd.Flags().StringVar(&f.description, "description", "", "trip description")
}

// update returns only the fields whose flags were given on the command line.
func (f *tripFlags) update(cmd *cobra.Command) models.TripUpdate {
	var u models.TripUpdate
	if cmd.Flags().Changed("title") {
		u.Title = &f.title
	}
	if cmd.Flags().Changed("location") {
		u.Location = &f.location
	}
	if cmd.Flags().Changed("price") {
		u.Price = &f.price
	}
	if cmd.Flags().Changed("description") {
		u.Description = &f.description
	}
	return u
}

func createTripCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var fields tripFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			u := fields.update(cmd)
			return app.CreateTrip(cmd.Context(), models.TripInput{
				Title:       u.Title,
				Location:    u.Location,
				Price:       u.Price,
				Description: u.Description,
			})
		},
	}
	fields.register(cmd)

	return cmd
}

func updateTripCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var fields tripFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTripID(args[0])
			if err != nil {
				return err
			}
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.UpdateTrip(cmd.Context(), id, fields.update(cmd))
		},
	}
	fields.register(cmd)

	return cmd
}

func deleteTripCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTripID(args[0])
			if err != nil {
				return err
			}
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.DeleteTrip(cmd.Context(), id)
		},
	}
}

func parseTripID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, ErrInvalidTripID
	}
	return id, nil
}

// ─────────────────────────────────────────────
// Rates
// ─────────────────────────────────────────────

func ratesCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show the built-in USD rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.StaticRates(cmd.Context())
		},
	}
}

func latestCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.LatestRates(cmd.Context(), base)
		},
	}
	cmd.Flags().StringVar(&base, "base", "USD", "base currency")

	return cmd
}

func timeseriesCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var req models.TimeseriesRequest

	cmd := &cobra.Command{
		Use:   "timeseries",
		Short: "Show daily exchange rates over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(out)
			if err != nil {
				return err
			}
			return app.Timeseries(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.StartDate, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Base, "base", "USD", "base currency")
	cmd.Flags().StringVar(&req.Symbols, "symbols", "", "comma-separated currency codes")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
