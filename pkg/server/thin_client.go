package server

import (
	"crypto/sha256"
	"fmt"
	"net/http"

	clientdist "github.com/aibabysense/landing/client/dist"
	"github.com/aibabysense/landing/pkg/assets"
)

// embeddedFile is a file compiled into the binary and served with an ETag.
type embeddedFile struct {
	body        []byte
	etag        string
	contentType string
}

func newEmbeddedFile(body []byte, contentType string) embeddedFile {
	sum := sha256.Sum256(body)
	return embeddedFile{
		body:        body,
		etag:        fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:])),
		contentType: contentType,
	}
}

var (
	thinClient = newEmbeddedFile(clientdist.LandingJS, "application/javascript; charset=utf-8")
	stylesheet = newEmbeddedFile(clientdist.LandingCSS, "text/css; charset=utf-8")
)

func (s *Server) serveThinClient(w http.ResponseWriter, r *http.Request) {
	s.serveEmbedded(w, r, thinClient)
}

func (s *Server) serveStylesheet(w http.ResponseWriter, r *http.Request) {
	s.serveEmbedded(w, r, stylesheet)
}

func (s *Server) serveEmbedded(w http.ResponseWriter, r *http.Request, f embeddedFile) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if len(f.body) == 0 {
		http.Error(w, "Not available", http.StatusInternalServerError)
		return
	}

	// ETag-based caching (safe even without a versioned URL).
	w.Header().Set("ETag", f.etag)
	w.Header().Set("Content-Type", f.contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	// Caching policy:
	// - DevMode: no-store to avoid stale client behavior while iterating.
	// - Prod: revalidate via ETag, so updates are picked up safely.
	if s.config.DevMode {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	}

	if assets.ETagMatches(r.Header.Get("If-None-Match"), f.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.body)
}
