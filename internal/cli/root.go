package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"quoteportal/internal/portal"
	"quoteportal/pkg"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const defaultAPI = "http://localhost:8080/api"

type options struct {
	api      string
	email    string
	password string
	admin    bool
	noLogin  bool
}

// app is shared by every command of one invocation.
type app struct {
	opts   options
	client *portal.Client
	out    io.Writer
}

// NewRootCommand builds the portalctl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Quote portal client: catalog, quotes, tracking and payments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := portal.NewClient(a.opts.api, nil)
			if err != nil {
				return err
			}
			a.client = c
			a.out = cmd.OutOrStdout()
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.opts.api, "api", envOr("PORTAL_API_URL", defaultAPI), "backend base URL (env PORTAL_API_URL)")
	f.StringVar(&a.opts.email, "email", os.Getenv("PORTAL_EMAIL"), "login email (env PORTAL_EMAIL)")
	f.StringVar(&a.opts.password, "password", os.Getenv("PORTAL_PASSWORD"), "login password (env PORTAL_PASSWORD)")
	f.BoolVar(&a.opts.admin, "admin", false, "log in with the admin role")
	f.BoolVar(&a.opts.noLogin, "no-login", envBool("PORTAL_NO_LOGIN"),
		"skip the login request; the role comes from --admin (env PORTAL_NO_LOGIN)")

	root.AddCommand(
		a.loginCommand(),
		a.registerCommand(),
		a.productsCommand(),
		a.quotesCommand(),
		a.trackingCommand(),
		a.paymentsCommand(),
		a.quotationsCommand(),
	)
	return root
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	return err == nil && v
}

func (a *app) role() portal.Role {
	if a.opts.admin {
		return portal.RoleAdmin
	}
	return portal.RoleUser
}

// context tags every request of one command with the same correlation id.
func (a *app) context(cmd *cobra.Command) context.Context {
	return pkg.WithCorrelationID(cmd.Context(), uuid.NewString())
}

func (a *app) login(ctx context.Context) (portal.Session, error) {
	if a.opts.email == "" {
		return portal.Session{}, fmt.Errorf("%w: --email is required", portal.ErrInvalidInput)
	}
	return a.client.Login(ctx, a.opts.email, a.opts.password, a.role())
}

// adminSession logs in and fails fast unless the backend granted admin.
// With --no-login, for a backend that serves no session endpoints, the
// session is built locally from --email and --admin.
func (a *app) adminSession(ctx context.Context) (portal.Session, error) {
	var (
		s   portal.Session
		err error
	)
	if a.opts.noLogin {
		s = portal.Session{Email: a.opts.email, Role: a.role()}
	} else if s, err = a.login(ctx); err != nil {
		return portal.Session{}, err
	}
	if !s.IsAdmin() {
		return portal.Session{}, portal.ErrAdminRequired
	}
	return s, nil
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
