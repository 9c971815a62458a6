package commands

import (
	"Reminder/internal/cli/api"
	"Reminder/internal/config"
	"Reminder/internal/model"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories of the current user" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	userID, err := currentUser(cfg)
	if err != nil {
		return err
	}
	var list []model.Category
	u := endpoint(cfg, "categories") + "?userId=" + url.QueryEscape(userID)
	if err := api.DoJSON(ctx, http.MethodGet, u, nil, &list); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, deref(c.Color))
	}
	return tw.Flush()
}

type categoryAddCmd struct{}

func (categoryAddCmd) Name() string        { return "category-add" }
func (categoryAddCmd) Description() string { return "Create a category" }
func (categoryAddCmd) Usage() string       { return "category-add <name> [color]" }

func (categoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	userID, err := currentUser(cfg)
	if err != nil {
		return err
	}
	body := map[string]any{"userId": userID, "name": args[0]}
	if len(args) == 2 {
		body["color"] = args[1]
	}
	var c model.Category
	if err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "categories"), body, &c); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created category %s\n", c.ID)
	return nil
}

func init() {
	RegisterCmd(categoriesCmd{})
	RegisterCmd(categoryAddCmd{})
}
