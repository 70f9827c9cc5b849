package main

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"io"
	"log/slog"
	"os"
	"sharedCalendar/internal/calendar"
	"sharedCalendar/internal/config"
	"sharedCalendar/internal/lib/ics"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
	"sharedCalendar/internal/storage/backend"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		slog.Error("calendarctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "calendarctl",
		Usage:  "Manage the shared calendar stores offline.",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", EnvVars: []string{"CONFIG_PATH"}, Usage: "path to the yaml config file"},
			&cli.BoolFlag{Name: "verbose", Usage: "log debug messages to stderr"},
		},
		Commands: []*cli.Command{
			usersCommand(),
			eventsCommand(),
		},
	}
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Inspect and edit the authorized users allowlist.",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print every authorized user.",
				Action: withAllowlist(func(c *cli.Context, a *calendar.Allowlist) error {
					users, err := a.List(c.Context)
					if err != nil {
						return err
					}
					return printUsers(c.App.Writer, users, a.PrimaryAdmin())
				}),
			},
			{
				Name:      "add",
				Usage:     "Authorize an email address.",
				ArgsUsage: "EMAIL",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "admin", Usage: "grant admin rights"},
				},
				Action: withAllowlist(func(c *cli.Context, a *calendar.Allowlist) error {
					email, err := emailArg(c)
					if err != nil {
						return err
					}
					users, err := a.Add(c.Context, email, c.Bool("admin"))
					if err != nil {
						return err
					}
					return printUsers(c.App.Writer, users, a.PrimaryAdmin())
				}),
			},
			{
				Name:      "remove",
				Usage:     "Revoke an email address.",
				ArgsUsage: "EMAIL",
				Action: withAllowlist(func(c *cli.Context, a *calendar.Allowlist) error {
					email, err := emailArg(c)
					if err != nil {
						return err
					}
					users, err := a.Remove(c.Context, "", email)
					if err != nil {
						return err
					}
					return printUsers(c.App.Writer, users, a.PrimaryAdmin())
				}),
			},
			setAdminCommand("promote", "Grant admin rights to an authorized user.", true),
			setAdminCommand("demote", "Revoke admin rights from an authorized user.", false),
		},
	}
}

func setAdminCommand(name, usage string, isAdmin bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "EMAIL",
		Action: withAllowlist(func(c *cli.Context, a *calendar.Allowlist) error {
			email, err := emailArg(c)
			if err != nil {
				return err
			}
			users, err := a.SetAdmin(c.Context, email, isAdmin)
			if err != nil {
				return err
			}
			return printUsers(c.App.Writer, users, a.PrimaryAdmin())
		}),
	}
}

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Inspect stored events.",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print every event.",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "ics", Usage: "print an iCalendar feed instead of a table"},
				},
				Action: func(c *cli.Context) error {
					store, _, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					events, err := calendar.NewEvents(store).List(c.Context)
					if err != nil {
						return err
					}

					if c.Bool("ics") {
						return ics.Encode(c.App.Writer, events, time.Now())
					}

					w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tTITLE\tSTART\tEND\tCREATED BY\tLAST UPDATED BY")
					for _, ev := range events {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
							strconv.FormatInt(ev.ID, 10), ev.Title,
							ev.Start.Format(time.RFC3339), ev.End.Format(time.RFC3339),
							ev.CreatedBy, ev.LastUpdatedBy)
					}
					return w.Flush()
				},
			},
		},
	}
}

func withAllowlist(fn func(c *cli.Context, a *calendar.Allowlist) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		store, cfg, err := openStore(c)
		if err != nil {
			return err
		}
		defer store.Close()

		return fn(c, calendar.NewAllowlist(store, cfg.Auth.AdminEmail))
	}
}

func openStore(c *cli.Context) (storage.Backend, *config.Tooling, error) {
	cfg, err := config.LoadTooling(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read config: %w", err)
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := backend.Open(log, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	return store, cfg, nil
}

func emailArg(c *cli.Context) (string, error) {
	email := strings.TrimSpace(c.Args().First())
	if email == "" || c.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one EMAIL argument: %w", c.Command.Name, storage.ErrBadRequest)
	}

	return email, nil
}

func printUsers(out io.Writer, users []models.AuthorizedUser, primaryAdmin string) error {
	admin := color.New(color.FgYellow).SprintFunc()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tROLE")
	for _, u := range users {
		role := "user"
		switch {
		case u.Email == primaryAdmin:
			role = admin("primary admin")
		case u.IsAdmin:
			role = admin("admin")
		}
		fmt.Fprintf(w, "%s\t%s\n", u.Email, role)
	}

	return w.Flush()
}
