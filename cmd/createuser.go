package cmd

import (
	"context"
	"fmt"
	"io"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"

	"github.com/spf13/pflag"
)

// CreateUser implements "createuser --username NAME --password PASS [--staff]".
func CreateUser(ctx context.Context, args []string, users usecase.UserService, out io.Writer) error {
	fs := pflag.NewFlagSet("createuser", pflag.ContinueOnError)
	fs.SetOutput(out)

	var req request.CreateUserRequest
	fs.StringVar(&req.Username, "username", "", "login name")
	fs.StringVar(&req.Password, "password", "", "password, at least 8 characters")
	fs.BoolVar(&req.IsStaff, "staff", false, "mark the user as staff")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	user, err := users.CreateUser(ctx, &req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "created user %s (%s)\n", user.Username, user.ID)
	return nil
}
