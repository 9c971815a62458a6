package commands

import (
	"Reminder/internal/cli/api"
	"Reminder/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Exit codes of rmcli.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch выполняет команду из args и возвращает код выхода.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	if err == nil {
		return exitOK
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	}
	reportError(name, err)
	return exitError
}

// help печатает общую справку или справку по одной команде.
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}
	fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
	return exitOK
}

// reportError выводит ошибку команды; ошибки валидации сервера по полю на строку.
func reportError(name string, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Details) > 0 {
		fmt.Fprintf(Out, "%s error: %s\n", name, apiErr.Message)
		for _, d := range apiErr.Details {
			fmt.Fprintf(Out, "  %s: %s\n", d.Field, d.Message)
		}
		return
	}
	fmt.Fprintf(Out, "%s error: %v\n", name, err)
}
