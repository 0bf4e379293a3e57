package assets

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// CachePolicy selects the Cache-Control strategy for served assets.
type CachePolicy string

const (
	// CacheNone disables caching, for development.
	CacheNone CachePolicy = "none"

	// CacheProduction caches fingerprinted files for a year and everything
	// else for an hour with revalidation.
	CacheProduction CachePolicy = "production"
)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// Prefix is stripped from the request path to form the asset name.
	// Default "/".
	Prefix string

	// Cache is the caching strategy. Default CacheProduction.
	Cache CachePolicy

	// Logger receives source failures. Default slog.Default().
	Logger *slog.Logger
}

// Handler serves assets from a Source over HTTP.
type Handler struct {
	source Source
	prefix string
	cache  CachePolicy
	logger *slog.Logger
}

// NewHandler returns a handler serving src.
func NewHandler(src Source, cfg HandlerConfig) *Handler {
	if cfg.Prefix == "" {
		cfg.Prefix = "/"
	}
	if !strings.HasSuffix(cfg.Prefix, "/") {
		cfg.Prefix += "/"
	}
	if cfg.Cache == "" {
		cfg.Cache = CacheProduction
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Handler{
		source: src,
		prefix: cfg.Prefix,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	name, ok := RelPath(r.URL.Path, h.prefix)
	if !ok {
		http.NotFound(w, r)
		return
	}

	obj, err := h.source.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("asset open failed", "name", name, "error", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	defer obj.Body.Close()

	header := w.Header()
	header.Set("Content-Type", obj.ContentType)
	header.Set("X-Content-Type-Options", "nosniff")
	h.applyCacheHeaders(header, name)
	if obj.ETag != "" {
		header.Set("ETag", obj.ETag)
	}
	if !obj.ModTime.IsZero() {
		header.Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
	}

	if ETagMatches(r.Header.Get("If-None-Match"), obj.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if obj.Size >= 0 {
		header.Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		h.logger.Debug("asset copy interrupted", "name", name, "error", err)
	}
}

func (h *Handler) applyCacheHeaders(header http.Header, name string) {
	switch h.cache {
	case CacheNone:
		header.Set("Cache-Control", "no-store, no-cache, must-revalidate")
	case CacheProduction:
		if isFingerprinted(name) {
			header.Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			header.Set("Cache-Control", "public, max-age=3600, must-revalidate")
		}
	}
}

// RelPath strips prefix from urlPath and returns the asset name it refers
// to. It rejects traversal, absolute paths and other tricks that could
// escape the source root.
func RelPath(urlPath, prefix string) (string, bool) {
	if !strings.HasPrefix(urlPath, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(urlPath, prefix)
	if rel == "" {
		return "", false
	}

	// NUL can arrive via %00.
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}
	if strings.Contains(rel, "\\") {
		return "", false
	}
	// "/static//etc/passwd" strips to an absolute path.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}
	// Check dot-segments before cleaning, which would hide them.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}
	return clean, true
}

// isFingerprinted reports whether the file name carries a content hash,
// e.g. "app.a1b2c3d4.css".
func isFingerprinted(name string) bool {
	parts := strings.Split(path.Base(name), ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// ETagMatches reports whether an If-None-Match header value matches etag.
// Lists and weak validators are accepted.
func ETagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" || etag == "" {
		return false
	}
	for _, part := range strings.Split(ifNoneMatch, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == etag || candidate == "*" {
			return true
		}
		if strings.HasPrefix(candidate, "W/") && strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
