package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shelfd/shelfd/pkg/book"
	"github.com/shelfd/shelfd/pkg/httputil"
	"github.com/shelfd/shelfd/pkg/store"
)

// parseBookID extracts and parses the {id} path value. Non-integer and
// non-positive IDs can never exist in the store, so both report false.
func parseBookID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, HealthResponse{
		Status: "ok",
		Uptime: s.Uptime(),
	})
}

// handleGetStatus handles GET /status.
func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	version := s.version
	if version == "" {
		version = "dev"
	}

	httputil.WriteOK(w, StatusResponse{
		Status:    "ok",
		Port:      s.port,
		Uptime:    s.Uptime(),
		BookCount: s.store.Count(),
		Version:   version,
	})
}

// handleListBooks handles GET /books. The response is a JSON object
// keyed by book ID.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.store.List(r.Context())
	if err != nil {
		s.log.Error("failed to list books", "error", err)
		httputil.WriteInternalError(w, "store_error", "failed to list books")
		return
	}
	httputil.WriteOK(w, books)
}

// handleGetBook handles GET /books/{id}.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(r)
	if !ok {
		httputil.WriteNotFound(w, "not_found", "book not found")
		return
	}

	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "book not found")
			return
		}
		s.log.Error("failed to get book", "id", id, "error", err)
		httputil.WriteInternalError(w, "store_error", "failed to get book")
		return
	}

	httputil.WriteOK(w, b)
}

// handleCreateBook handles POST /books. Title and author are required;
// the store is not touched until the payload validates.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "invalid_json", "invalid request body")
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		httputil.WriteBadRequest(w, "missing_fields",
			"required fields missing: "+strings.Join(missing, ", "))
		return
	}

	created, err := s.store.Create(r.Context(), &book.Book{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
	})
	if err != nil {
		s.log.Error("failed to create book", "error", err)
		httputil.WriteInternalError(w, "store_error", "failed to create book")
		return
	}

	s.log.Info("book created", "id", created.ID, "title", created.Title)
	httputil.WriteCreated(w, created)
}

// handleUpdateBook handles PUT /books/{id}. Only the supplied fields
// are overwritten; the rest keep their current values.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(r)
	if !ok {
		httputil.WriteNotFound(w, "not_found", "book not found")
		return
	}

	var req UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "invalid_json", "invalid request body")
		return
	}

	updated, err := s.store.Update(r.Context(), id, book.Patch{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "book not found")
			return
		}
		s.log.Error("failed to update book", "id", id, "error", err)
		httputil.WriteInternalError(w, "store_error", "failed to update book")
		return
	}

	s.log.Info("book updated", "id", id)
	httputil.WriteOK(w, updated)
}

// handleDeleteBook handles DELETE /books/{id}.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(r)
	if !ok {
		httputil.WriteNotFound(w, "not_found", "book not found")
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "book not found")
			return
		}
		s.log.Error("failed to delete book", "id", id, "error", err)
		httputil.WriteInternalError(w, "store_error", "failed to delete book")
		return
	}

	s.log.Info("book deleted", "id", id)
	httputil.WriteNoContent(w)
}

// handleStateReset handles POST /state/reset and restores the seed catalog.
func (s *Server) handleStateReset(w http.ResponseWriter, r *http.Request) {
	s.store.Reset()

	s.log.Info("catalog reset to seed data")
	httputil.WriteOK(w, ResetResponse{
		Reset:     true,
		BookCount: s.store.Count(),
		Message:   "catalog reset to seed data",
	})
}
