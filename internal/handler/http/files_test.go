// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cipherhold/cipherhold/internal/blob"
	"github.com/cipherhold/cipherhold/internal/service"
	"github.com/cipherhold/cipherhold/internal/store"
)

func (env *testEnv) do(t *testing.T, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", env.bearer)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateFile(t *testing.T) {
	env := newTestEnv(t)

	created := time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC)
	env.files.EXPECT().
		Create(gomock.Any(), testUserID, int64(3), "notes.txt").
		Return(service.FileEntry{ID: 21, DirectoryID: 3, Name: "notes.txt", CreatedAt: created, UpdatedAt: created}, nil)

	rec := env.do(t, http.MethodPost, "/api/files", `{"directoryId":3,"name":"notes.txt"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry service.FileEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, int64(21), entry.ID)
	assert.Equal(t, "notes.txt", entry.Name)
}

func TestCreateFileNameConflict(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		Create(gomock.Any(), testUserID, int64(3), "taken.txt").
		Return(service.FileEntry{}, store.ErrNameConflict)

	rec := env.do(t, http.MethodPost, "/api/files", `{"directoryId":3,"name":"taken.txt"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateFileInvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/files", `{"directoryId":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveContent(t *testing.T) {
	env := newTestEnv(t)

	modified := time.Date(2026, 2, 11, 9, 31, 0, 0, time.UTC)
	env.files.EXPECT().
		SaveContent(gomock.Any(), testUserID, int64(21), gomock.Any(), "editor-A").
		DoAndReturn(func(_ any, _, _ int64, content io.Reader, _ string) (service.SaveResult, error) {
			got, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "hello world", string(got))
			return service.SaveResult{Size: 11, ModifiedAt: modified}, nil
		})

	rec := env.do(t, http.MethodPost, "/api/files/21/content", "hello world",
		map[string]string{"X-Client-Id": "editor-A"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res service.SaveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(11), res.Size)
}

func TestSaveContentLockTimeout(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		SaveContent(gomock.Any(), testUserID, int64(21), gomock.Any(), "").
		Return(service.SaveResult{}, blob.ErrLockTimeout)

	rec := env.do(t, http.MethodPost, "/api/files/21/content", "hello", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "try again")
}

func TestLoadContentStreams(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		LoadContent(gomock.Any(), testUserID, int64(21)).
		Return(io.NopCloser(strings.NewReader("decrypted content")), nil)

	rec := env.do(t, http.MethodGet, "/api/files/21/content", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "decrypted content", rec.Body.String())
}

func TestLoadContentNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		LoadContent(gomock.Any(), testUserID, int64(404)).
		Return(nil, blob.ErrBlobNotFound)

	rec := env.do(t, http.MethodGet, "/api/files/404/content", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentSize(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		ContentSize(gomock.Any(), testUserID, int64(21)).
		Return(int64(1024), nil)

	rec := env.do(t, http.MethodGet, "/api/files/21/size", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res contentSizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(1024), res.Size)
}

func TestDeleteFileNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		Delete(gomock.Any(), testUserID, int64(404)).
		Return(store.ErrFileNotFound)

	rec := env.do(t, http.MethodDelete, "/api/files/404", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenameFileConflict(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		Rename(gomock.Any(), testUserID, int64(21), "taken.txt").
		Return(store.ErrNameConflict)

	rec := env.do(t, http.MethodPut, "/api/files/21/name", `{"name":"taken.txt"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListFilesWithTagFilter(t *testing.T) {
	env := newTestEnv(t)

	env.files.EXPECT().
		List(gomock.Any(), testUserID, int64(3), []int64{10, 11}).
		Return([]service.FileEntry{{ID: 21, Name: "a.txt"}}, nil)

	rec := env.do(t, http.MethodGet, "/api/directories/3/files?tags=10,11", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []service.FileEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name)
}

func TestListFilesBadTagFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/directories/3/files?tags=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidFileIDParam(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/files/not-a-number/size", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
