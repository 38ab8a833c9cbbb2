package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// Usage lists the supported commands.
const Usage = `usage: accounts-client [-a address] [-t token] <command>

commands:
  signup <email> <password>
  login <email> <password>
  logout
  me
  health
  users list
  users get <id>
  users create <email> <password>
  users update <id> [-email <email>] [-password <password>]
  users delete <id>`

// sessionOutput is printed after signup and login so the token can be
// passed to later invocations with -t or ACCOUNTS_TOKEN.
type sessionOutput struct {
	models.AuthResponse
	Token string `json:"token"`
}

type App struct {
	accounts adapter.AccountsAdapter
	out      io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(accounts adapter.AccountsAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if accounts == nil {
		return nil, ErrNoAdapter
	}
	return &App{accounts: accounts, out: out, logger: logger}, nil
}

// Run executes the command in args.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Msg("running client command")

	switch cmd {
	case "signup", "login":
		return a.authenticate(ctx, cmd, rest)
	case "logout":
		if err := a.accounts.Logout(ctx); err != nil {
			return err
		}
		return a.print(map[string]string{"status": "logged out"})
	case "me":
		user, err := a.accounts.Me(ctx)
		if err != nil {
			return err
		}
		return a.print(user)
	case "health":
		if err := a.accounts.Health(ctx); err != nil {
			return err
		}
		return a.print(models.HealthResponse{Status: "ok"})
	case "users":
		return a.users(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) authenticate(ctx context.Context, cmd string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s <email> <password>", ErrUsage, cmd)
	}
	credentials := models.Credentials{Email: args[0], Password: args[1]}

	var (
		resp models.AuthResponse
		err  error
	)
	if cmd == "signup" {
		resp, err = a.accounts.Signup(ctx, credentials)
	} else {
		resp, err = a.accounts.Login(ctx, credentials)
	}
	if err != nil {
		return err
	}

	return a.print(sessionOutput{AuthResponse: resp, Token: a.accounts.Token()})
}

func (a *App) users(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: users <list|get|create|update|delete>", ErrUsage)
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		users, err := a.accounts.ListUsers(ctx)
		if err != nil {
			return err
		}
		return a.print(users)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		user, err := a.accounts.GetUser(ctx, id)
		if err != nil {
			return err
		}
		return a.print(user)
	case "create":
		if len(rest) != 2 {
			return fmt.Errorf("%w: users create <email> <password>", ErrUsage)
		}
		user, err := a.accounts.CreateUser(ctx, models.CreateUserRequest{Email: rest[0], Password: rest[1]})
		if err != nil {
			return err
		}
		return a.print(user)
	case "update":
		return a.updateUser(ctx, rest)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err = a.accounts.DeleteUser(ctx, id); err != nil {
			return err
		}
		return a.print(map[string]int64{"deleted": id})
	default:
		return fmt.Errorf("%w: users %q", ErrUnknownCommand, sub)
	}
}

func (a *App) updateUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: users update <id> [-email <email>] [-password <password>]", ErrUsage)
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("users update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "new email")
	password := fs.String("password", "", "new password")
	if err = fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	// only flags given on the command line are sent
	var req models.UpdateUserRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "email":
			req.Email = email
		case "password":
			req.Password = password
		}
	})

	user, err := a.accounts.UpdateUser(ctx, id, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error printing result: %w", err)
	}
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one user id", ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid user id %q", ErrUsage, args[0])
	}
	return id, nil
}
