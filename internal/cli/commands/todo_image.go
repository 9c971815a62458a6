package commands

import (
	"Reminder/internal/cli/api"
	"Reminder/internal/config"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

type todoImageCmd struct{}

func (todoImageCmd) Name() string        { return "todo-image" }
func (todoImageCmd) Description() string { return "Attach an image file to a todo" }
func (todoImageCmd) Usage() string       { return "todo-image <todoId> <file>" }

type imageSlot struct {
	UploadURL string `json:"uploadUrl"`
	ImageKey  string `json:"imageKey"`
	ImageURL  string `json:"imageUrl"`
}

// Run запрашивает у сервера ссылку и загружает файл напрямую в хранилище.
func (todoImageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	todoID, path := args[0], args[1]
	userID, err := currentUser(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return err
	}
	contentType, err := detectContentType(f, path)
	if err != nil {
		return err
	}

	var slot imageSlot
	body := map[string]string{"fileName": filepath.Base(path), "contentType": contentType, "userId": userID}
	if err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "todos", todoID, "image"), body, &slot); err != nil {
		return err
	}
	if err := api.PutFile(ctx, slot.UploadURL, contentType, f, st.Size()); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	fmt.Fprintf(Out, "Uploaded %s\n%s\n", slot.ImageKey, slot.ImageURL)
	return nil
}

// detectContentType по расширению, иначе по первым байтам файла. Позиция чтения возвращается в начало.
func detectContentType(f *os.File, path string) (string, error) {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct, nil
	}
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func init() { RegisterCmd(todoImageCmd{}) }
