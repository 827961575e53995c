// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cipherhold/cipherhold/internal/logger"
)

// clientIDHeader carries the per-connection editor identity on content saves
// so the saving editor's own sync session can suppress the echo. Absent for
// callers without a live session.
const clientIDHeader = "X-Client-Id"

type createFileRequest struct {
	DirectoryID int64  `json:"directoryId"`
	Name        string `json:"name"`
}

type renameFileRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createFile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.DirectoryID == 0 {
		http.Error(w, "name and directoryId are required", http.StatusBadRequest)
		return
	}

	entry, err := h.services.Files.Create(r.Context(), userID, req.DirectoryID, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.createFile", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, entry)
}

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
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

	entry, err := h.services.Files.Get(r.Context(), userID, fileID)
	if err != nil {
		writeError(w, r, "*Handler.getFile", err)
		return
	}

	writeJSON(w, r, http.StatusOK, entry)
}

func (h *Handler) renameFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

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

	var req renameFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.renameFile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := h.services.Files.Rename(r.Context(), userID, fileID, req.Name); err != nil {
		writeError(w, r, "*Handler.renameFile", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
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

	tagIDs, err := tagIDsParam(r)
	if err != nil {
		http.Error(w, "invalid tags filter", http.StatusBadRequest)
		return
	}

	entries, err := h.services.Files.List(r.Context(), userID, directoryID, tagIDs)
	if err != nil {
		writeError(w, r, "*Handler.listFiles", err)
		return
	}

	writeJSON(w, r, http.StatusOK, entries)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.Files.Delete(r.Context(), userID, fileID); err != nil {
		writeError(w, r, "*Handler.deleteFile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// saveContent replaces a file's content with the request body. The body is
// streamed straight into the encrypting blob writer, never buffered in full.
func (h *Handler) saveContent(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.services.Files.SaveContent(r.Context(), userID, fileID, r.Body, r.Header.Get(clientIDHeader))
	if err != nil {
		writeError(w, r, "*Handler.saveContent", err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// loadContent streams the decrypted file content to the response. The content
// read lock is held until the copy finishes.
func (h *Handler) loadContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

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

	rc, err := h.services.Files.LoadContent(r.Context(), userID, fileID)
	if err != nil {
		writeError(w, r, "*Handler.loadContent", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")

	if _, err := io.Copy(w, rc); err != nil {
		// headers are gone; all we can do is log the broken stream
		log.Err(err).Str("func", "*Handler.loadContent").Int64("file_id", fileID).Msg("content stream interrupted")
	}
}

type contentSizeResponse struct {
	Size int64 `json:"size"`
}

func (h *Handler) contentSize(w http.ResponseWriter, r *http.Request) {
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

	size, err := h.services.Files.ContentSize(r.Context(), userID, fileID)
	if err != nil {
		writeError(w, r, "*Handler.contentSize", err)
		return
	}

	writeJSON(w, r, http.StatusOK, contentSizeResponse{Size: size})
}

// idParam parses a chi URL parameter as a positive int64.
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// tagIDsParam parses the optional comma-separated "tags" query parameter.
func tagIDsParam(r *http.Request) ([]int64, error) {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Str("func", "writeJSON").Msg("failed to encode response")
	}
}
