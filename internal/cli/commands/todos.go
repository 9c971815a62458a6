package commands

import (
	"Reminder/internal/cli/api"
	"Reminder/internal/config"
	"Reminder/internal/model"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type todosCmd struct{}

func (todosCmd) Name() string        { return "todos" }
func (todosCmd) Description() string { return "List todos of the current user" }
func (todosCmd) Usage() string       { return "todos" }

func (todosCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	userID, err := currentUser(cfg)
	if err != nil {
		return err
	}
	var todos []model.Todo
	u := endpoint(cfg, "todos") + "?userId=" + url.QueryEscape(userID)
	if err := api.DoJSON(ctx, http.MethodGet, u, nil, &todos); err != nil {
		return err
	}
	if len(todos) == 0 {
		fmt.Fprintln(Out, "No todos")
		return nil
	}
	printTodos(Out, todos)
	return nil
}

type todoAddCmd struct{}

func (todoAddCmd) Name() string        { return "todo-add" }
func (todoAddCmd) Description() string { return "Create a todo" }
func (todoAddCmd) Usage() string {
	return "todo-add <title> [-d description] [-c categoryId] [-due YYYY-MM-DD]"
}

func (todoAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fset := flag.NewFlagSet("todo-add", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	desc := fset.String("d", "", "description")
	category := fset.String("c", "", "category id")
	due := fset.String("due", "", "due date")
	positional, err := parseInterspersed(fset, args)
	if err != nil || len(positional) != 1 {
		return ErrUsage
	}
	userID, err := currentUser(cfg)
	if err != nil {
		return err
	}

	body := map[string]string{"userId": userID, "title": positional[0]}
	for k, v := range map[string]string{"description": *desc, "categoryId": *category, "dueDate": *due} {
		if v != "" {
			body[k] = v
		}
	}
	var t model.Todo
	if err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "todos"), body, &t); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created todo %s\n", t.ID)
	return nil
}

type todoDoneCmd struct{}

func (todoDoneCmd) Name() string        { return "todo-done" }
func (todoDoneCmd) Description() string { return "Mark a todo as completed (-undo to reopen)" }
func (todoDoneCmd) Usage() string       { return "todo-done <todoId> [-undo]" }

func (todoDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fset := flag.NewFlagSet("todo-done", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	undo := fset.Bool("undo", false, "reopen")
	positional, err := parseInterspersed(fset, args)
	if err != nil || len(positional) != 1 {
		return ErrUsage
	}
	var t model.Todo
	body := map[string]bool{"completed": !*undo}
	if err := api.DoJSON(ctx, http.MethodPatch, endpoint(cfg, "todos", positional[0]), body, &t); err != nil {
		return err
	}
	state := "open"
	if t.Completed {
		state = "done"
	}
	fmt.Fprintf(Out, "Todo %s is %s\n", t.ID, state)
	return nil
}

type todoRmCmd struct{}

func (todoRmCmd) Name() string        { return "todo-rm" }
func (todoRmCmd) Description() string { return "Delete a todo and its image" }
func (todoRmCmd) Usage() string       { return "todo-rm <todoId>" }

func (todoRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := api.DoJSON(ctx, http.MethodDelete, endpoint(cfg, "todos", args[0]), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted todo %s\n", args[0])
	return nil
}

func init() {
	RegisterCmd(todosCmd{})
	RegisterCmd(todoAddCmd{})
	RegisterCmd(todoDoneCmd{})
	RegisterCmd(todoRmCmd{})
}
