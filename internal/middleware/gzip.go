package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// gzipWriter откладывает заголовки до первой записи тела: ответ без тела уходит без Content-Encoding.
// Если обработчик сам выставил Content-Encoding, тело проходит как есть.
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	status      int
	wroteHeader bool
	passthrough bool
}

func (w *gzipWriter) WriteHeader(status int) {
	if w.wroteHeader || w.status != 0 {
		return
	}
	w.status = status
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	if w.zw == nil && !w.passthrough {
		w.start()
	}
	if w.passthrough {
		return w.ResponseWriter.Write(b)
	}
	return w.zw.Write(b)
}

// start выбирает режим по заголовкам на момент первой записи.
func (w *gzipWriter) start() {
	h := w.ResponseWriter.Header()
	if h.Get("Content-Encoding") != "" {
		w.passthrough = true
	} else {
		h.Del("Content-Length")
		h.Set("Content-Encoding", "gzip")
		w.zw = gzip.NewWriter(w.ResponseWriter)
	}
	w.flushHeader()
}

func (w *gzipWriter) flushHeader() {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *gzipWriter) close() {
	if w.zw != nil {
		_ = w.zw.Close()
		return
	}
	w.flushHeader()
}

// WithGzip сжимает ответ, если клиент принимает gzip.
func WithGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipWriter{ResponseWriter: w}
		defer gw.close()
		next.ServeHTTP(gw, r)
	})
}
