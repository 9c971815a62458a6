package commands

import (
	"Reminder/internal/cli/api"
	"Reminder/internal/config"
	"Reminder/internal/model"
	"context"
	"fmt"
	"net/http"
)

type useCmd struct{}

func (useCmd) Name() string        { return "use" }
func (useCmd) Description() string { return "Select the current user for other commands" }
func (useCmd) Usage() string       { return "use <userId>" }

// Run проверяет, что пользователь существует, и запоминает его.
func (useCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var u model.User
	if err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "users", args[0]), nil, &u); err != nil {
		return err
	}
	if err := contextStore(cfg).SaveUserID(u.ID); err != nil {
		return fmt.Errorf("saving context: %w", err)
	}
	fmt.Fprintf(Out, "Using %s <%s> (%s)\n", u.Name, u.Email, u.ID)
	return nil
}

func init() { RegisterCmd(useCmd{}) }
