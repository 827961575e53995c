// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/cipherhold/cipherhold/internal/logger"
)

type createDirectoryRequest struct {
	Path string `json:"path"`
}

type createTagRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createDirectory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createDirectoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createDirectory").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}

	entry, err := h.services.Catalog.CreateDirectory(r.Context(), userID, req.Path)
	if err != nil {
		writeError(w, r, "*Handler.createDirectory", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, entry)
}

func (h *Handler) listDirectories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.Catalog.ListDirectories(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listDirectories", err)
		return
	}

	writeJSON(w, r, http.StatusOK, entries)
}

// resolveDirectory answers "does this path exist" by plaintext path, looked
// up through the deterministic hash index.
func (h *Handler) resolveDirectory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}

	entry, err := h.services.Catalog.ResolveDirectory(r.Context(), userID, path)
	if err != nil {
		writeError(w, r, "*Handler.resolveDirectory", err)
		return
	}

	writeJSON(w, r, http.StatusOK, entry)
}

func (h *Handler) deleteDirectory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	directoryID, err := idParam(r, "directoryID")
	if err != nil {
		http.Error(w, "invalid directory id", http.StatusBadRequest)
		return
	}

	if err := h.services.Catalog.DeleteDirectory(r.Context(), userID, directoryID); err != nil {
		writeError(w, r, "*Handler.deleteDirectory", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createTag").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	entry, err := h.services.Catalog.CreateTag(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.createTag", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, entry)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.Catalog.ListTags(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listTags", err)
		return
	}

	writeJSON(w, r, http.StatusOK, entries)
}

// attachTag links a tag to a file. The file lookup scopes by the caller, so a
// foreign file id yields 404 before anything is attached.
func (h *Handler) attachTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	fileID, err := idParam(r, "fileID")
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	tagID, err := idParam(r, "tagID")
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	if _, err := h.services.Files.Get(r.Context(), userID, fileID); err != nil {
		writeError(w, r, "*Handler.attachTag", err)
		return
	}

	if err := h.services.Catalog.AttachTag(r.Context(), fileID, tagID); err != nil {
		writeError(w, r, "*Handler.attachTag", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) detachTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	fileID, err := idParam(r, "fileID")
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	tagID, err := idParam(r, "tagID")
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	if _, err := h.services.Files.Get(r.Context(), userID, fileID); err != nil {
		writeError(w, r, "*Handler.detachTag", err)
		return
	}

	if err := h.services.Catalog.DetachTag(r.Context(), fileID, tagID); err != nil {
		writeError(w, r, "*Handler.detachTag", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
