package commands

import (
	"Reminder/internal/cli/api"
	"Reminder/internal/config"
	"Reminder/internal/model"
	"context"
	"fmt"
	"net/http"
	"text/tabwriter"
)

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Create a user and make it current" }
func (userAddCmd) Usage() string       { return "user-add <email> <name>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var u model.User
	body := map[string]string{"email": args[0], "name": args[1]}
	if err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "users"), body, &u); err != nil {
		return err
	}
	if err := contextStore(cfg).SaveUserID(u.ID); err != nil {
		return fmt.Errorf("saving context: %w", err)
	}
	fmt.Fprintf(Out, "Created user %s\n", u.ID)
	return nil
}

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "List users" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var users []model.User
	if err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "users"), nil, &users); err != nil {
		return err
	}
	current, _ := currentUser(cfg)
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, " \tID\tEMAIL\tNAME")
	for _, u := range users {
		mark := " "
		if u.ID == current {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, u.ID, u.Email, u.Name)
	}
	return tw.Flush()
}

func init() {
	RegisterCmd(userAddCmd{})
	RegisterCmd(usersCmd{})
}
