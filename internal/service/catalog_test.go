// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cipherhold/cipherhold/internal/crypto"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/mock"
	"github.com/cipherhold/cipherhold/internal/service"
	"github.com/cipherhold/cipherhold/internal/store"
	"github.com/cipherhold/cipherhold/models"
)

func TestCatalogServiceCreateDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := testCipher(t)

	dirs := mock.NewMockDirectoryRepository(ctrl)
	svc := service.NewCatalogService(dirs, mock.NewMockTagRepository(ctrl), cipher, logger.Nop())

	created := time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC)
	want := crypto.SealField(cipher, "/work/notes")

	dirs.EXPECT().Create(gomock.Any(), int64(7), want).
		Return(models.Directory{ID: 3, UserID: 7, Path: want, CreatedAt: created}, nil)

	entry, err := svc.CreateDirectory(context.Background(), 7, "/work/notes")
	require.NoError(t, err)

	assert.Equal(t, int64(3), entry.ID)
	assert.Equal(t, "/work/notes", entry.Path)
	assert.Equal(t, created, entry.CreatedAt)
}

func TestCatalogServiceResolveDirectoryLooksUpByHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := testCipher(t)

	dirs := mock.NewMockDirectoryRepository(ctrl)
	svc := service.NewCatalogService(dirs, mock.NewMockTagRepository(ctrl), cipher, logger.Nop())

	sealed := crypto.SealField(cipher, "/work/notes")
	dirs.EXPECT().GetByPathHash(gomock.Any(), int64(7), sealed.Hash).
		Return(models.Directory{ID: 3, UserID: 7, Path: sealed}, nil)

	entry, err := svc.ResolveDirectory(context.Background(), 7, "/work/notes")
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.ID)
}

func TestCatalogServiceResolveDirectoryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	dirs := mock.NewMockDirectoryRepository(ctrl)
	svc := service.NewCatalogService(dirs, mock.NewMockTagRepository(ctrl), testCipher(t), logger.Nop())

	dirs.EXPECT().GetByPathHash(gomock.Any(), int64(7), gomock.Any()).
		Return(models.Directory{}, store.ErrDirectoryNotFound)

	_, err := svc.ResolveDirectory(context.Background(), 7, "/missing")
	assert.ErrorIs(t, err, store.ErrDirectoryNotFound)
}

func TestCatalogServiceListDirectoriesDecryptsPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := testCipher(t)

	dirs := mock.NewMockDirectoryRepository(ctrl)
	svc := service.NewCatalogService(dirs, mock.NewMockTagRepository(ctrl), cipher, logger.Nop())

	rows := []models.Directory{
		{ID: 1, UserID: 7, Path: crypto.SealField(cipher, "/a")},
		{ID: 2, UserID: 7, Path: crypto.SealField(cipher, "/b")},
	}
	dirs.EXPECT().List(gomock.Any(), int64(7)).Return(rows, nil)

	entries, err := svc.ListDirectories(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/a", entries[0].Path)
	assert.Equal(t, "/b", entries[1].Path)
}

func TestCatalogServiceCreateTagConflict(t *testing.T) {
	ctrl := gomock.NewController(t)

	tags := mock.NewMockTagRepository(ctrl)
	svc := service.NewCatalogService(mock.NewMockDirectoryRepository(ctrl), tags, testCipher(t), logger.Nop())

	tags.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).
		Return(models.Tag{}, store.ErrNameConflict)

	_, err := svc.CreateTag(context.Background(), 7, "work")
	assert.ErrorIs(t, err, store.ErrNameConflict)
}

func TestCatalogServiceListTagsDecryptsNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := testCipher(t)

	tags := mock.NewMockTagRepository(ctrl)
	svc := service.NewCatalogService(mock.NewMockDirectoryRepository(ctrl), tags, cipher, logger.Nop())

	rows := []models.Tag{
		{ID: 10, UserID: 7, Name: crypto.SealField(cipher, "work")},
		{ID: 11, UserID: 7, Name: crypto.SealField(cipher, "urgent")},
	}
	tags.EXPECT().List(gomock.Any(), int64(7)).Return(rows, nil)

	entries, err := svc.ListTags(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "work", entries[0].Name)
	assert.Equal(t, "urgent", entries[1].Name)
}

func TestCatalogServiceAttachDetach(t *testing.T) {
	ctrl := gomock.NewController(t)

	tags := mock.NewMockTagRepository(ctrl)
	svc := service.NewCatalogService(mock.NewMockDirectoryRepository(ctrl), tags, testCipher(t), logger.Nop())

	tags.EXPECT().Attach(gomock.Any(), int64(21), int64(10)).Return(nil)
	tags.EXPECT().Detach(gomock.Any(), int64(21), int64(10)).Return(store.ErrTagNotFound)

	require.NoError(t, svc.AttachTag(context.Background(), 21, 10))
	assert.ErrorIs(t, svc.DetachTag(context.Background(), 21, 10), store.ErrTagNotFound)
}
