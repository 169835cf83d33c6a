package mailbox

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Entry is one captured email: the metadata written by the development
// sender plus the identifier used to fetch its HTML body.
type Entry struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	From      string   `json:"from"`
	SendTo    []string `json:"send_to"`
	Subject   string   `json:"subject"`
	Tag       string   `json:"tag,omitempty"`
}

// Service lists and serves captured development emails from a directory.
type Service struct {
	dir string
	log *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a mailbox service over the given capture directory.
func NewService(dir string, opts ...Option) *Service {
	s := &Service{
		dir: dir,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the HTTP handler for the mailbox API:
//
//	GET /           list captured emails, newest first
//	GET /{id}       raw HTML body of one email
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.list)
	r.Get("/{id}", s.show)
	return r
}

// List returns all captured emails, newest first. An absent capture
// directory means nothing was sent yet and yields an empty list.
func (s *Service) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			return nil, err
		}

		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			s.log.Warn("Skipping unreadable mailbox metadata",
				slog.String("file", f.Name()),
				slog.Any("error", err),
			)
			continue
		}
		entry.ID = strings.TrimSuffix(f.Name(), ".json")
		entries = append(entries, entry)
	}

	// Filenames start with a timestamp, so lexical order is send order.
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })
	return entries, nil
}

func (s *Service) list(w http.ResponseWriter, r *http.Request) {
	entries, err := s.List()
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to list captured emails", slog.Any("error", err))
		http.Error(w, "failed to list captured emails", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to encode mailbox listing", slog.Any("error", err))
	}
}

func (s *Service) show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" || id != filepath.Base(id) || strings.Contains(id, "..") {
		http.NotFound(w, r)
		return
	}

	body, err := os.ReadFile(filepath.Join(s.dir, id+".html"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		s.log.ErrorContext(r.Context(), "Failed to read captured email", slog.Any("error", err))
		http.Error(w, "failed to read captured email", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}
