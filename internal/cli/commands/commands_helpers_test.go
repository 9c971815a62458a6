package commands

import (
	"Reminder/internal/config"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

// withTempConfig конфиг клиента, у которого каталог контекста лежит в temp.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{ClientContextDir: t.TempDir(), ServerURL: "http://127.0.0.1:0"}
}

// withServer поднимает httptest сервер и направляет на него конфиг.
func withServer(t *testing.T, cfg *config.Config, h http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg.ServerURL = srv.URL
}

// captureOut подменяет Out на буфер до конца теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}
