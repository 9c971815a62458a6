package commands

import (
	"Reminder/internal/config"
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

// ErrUsage возвращается командой при неверных аргументах; Dispatch печатает Usage.
var ErrUsage = errors.New("usage")

// Command подкоманда rmcli.
type Command interface {
	// Name имя команды, например "todos".
	Name() string
	Description() string
	// Usage строка вида "use <userId>".
	Usage() string
	// Run выполняет команду; args без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out общий writer для вывода CLI. По умолчанию os.Stdout, в тестах подменяется.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр. Вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage общая справка со списком команд.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("Reminder CLI\n\n")
	b.WriteString("Usage:\n  rmcli [--base-url <host:port>] [--https] [--context-dir <dir>] <command> [args]\n\n")
	b.WriteString("Commands:\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, c := range List() {
		_, _ = io.WriteString(tw, "  "+c.Usage()+"\t"+c.Description()+"\n")
	}
	_ = tw.Flush()
	b.WriteString("\nRun \"rmcli use <userId>\" or \"rmcli user-add\" before working with todos and categories.\n")
	return b.String()
}
