package commands

import (
	"Reminder/internal/cli/repo/fs"
	"Reminder/internal/config"
	"Reminder/internal/model"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"
)

// endpoint склеивает адрес сервера и путь, экранируя сегменты.
func endpoint(cfg *config.Config, segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.TrimRight(cfg.ServerURL, "/") + "/" + strings.Join(parts, "/")
}

func contextStore(cfg *config.Config) fs.ContextFSStore {
	return fs.ContextFSStore{Dir: cfg.ClientContextDir}
}

// currentUser id пользователя, выбранного командой use.
func currentUser(cfg *config.Config) (string, error) {
	return contextStore(cfg).LoadUserID()
}

// parseInterspersed разбирает флаги, стоящие и до, и после позиционных аргументов.
func parseInterspersed(fset *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := fset.Parse(rest); err != nil {
			return nil, err
		}
		rest = fset.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func printTodos(w io.Writer, todos []model.Todo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTITLE\tDUE\tCATEGORY\tIMAGE")
	for _, t := range todos {
		done := " "
		if t.Completed {
			done = "x"
		}
		img := "-"
		if t.ImageURL != "" {
			img = t.ImageURL
		}
		fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\t%s\t%s\n", t.ID, done, t.Title, deref(t.DueDate), deref(t.CategoryID), img)
	}
	_ = tw.Flush()
}
