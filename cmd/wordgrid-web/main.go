package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	httpadapter "svw.info/wordgrid/internal/adapters/http"
	"svw.info/wordgrid/internal/dictionary"
	"svw.info/wordgrid/internal/generator"
	"svw.info/wordgrid/internal/hint"
	"svw.info/wordgrid/internal/infrastructure/storage"
	"svw.info/wordgrid/internal/ports"
	"svw.info/wordgrid/internal/solver"
	"svw.info/wordgrid/internal/usecase"
	"svw.info/wordgrid/internal/validator"
	"svw.info/wordgrid/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dictPath := flag.String("dict", "./words.txt", "word list file, one word per line")
	storeKind := flag.String("store", "sqlite", "puzzle store to use: sqlite|fs")
	dbPath := flag.String("db-path", "./puzzles.db", "sqlite database file (store=sqlite)")
	persist := flag.String("persist-path", "./data", "save directory (store=fs)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	dict, err := dictionary.Load(*dictPath)
	if err != nil {
		logger.Error("load dictionary", "path", *dictPath, "err", err)
		os.Exit(1)
	}
	logger.Info("dictionary loaded", "path", *dictPath, "words", dict.Len())

	// Choose puzzle store: sqlite by default, JSON files via flag.
	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(*storeKind)) {
	case "fs":
		_ = os.MkdirAll(*persist, 0o755)
		st = storage.NewFS(*persist)
	default:
		db, err := storage.NewSQLite(*dbPath)
		if err != nil {
			logger.Error("open puzzle db", "path", *dbPath, "err", err)
			os.Exit(1)
		}
		defer db.Close()
		st = db
	}

	// Wire providers → use cases → HTTP adapter. Generator and hinter get
	// a solver that stops at the first solution.
	s := solver.New(dict)
	firstOnly := solver.New(dict)
	firstOnly.Limit = 1
	g := generator.New(dict, firstOnly)
	v := validator.New()
	hin := hint.NewFirstWord(firstOnly)
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "store", *storeKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
