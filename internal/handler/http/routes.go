// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/directories", func(r chi.Router) {
			r.Post("/", h.createDirectory)
			r.Get("/", h.listDirectories)
			r.Get("/resolve", h.resolveDirectory)
			r.Delete("/{directoryID}", h.deleteDirectory)
			r.Get("/{directoryID}/files", h.listFiles)
		})

		r.Route("/api/files", func(r chi.Router) {
			r.Post("/", h.createFile)
			r.Get("/{fileID}", h.getFile)
			r.Delete("/{fileID}", h.deleteFile)
			r.Put("/{fileID}/name", h.renameFile)
			r.Post("/{fileID}/content", h.saveContent)
			r.Get("/{fileID}/content", h.loadContent)
			r.Get("/{fileID}/size", h.contentSize)
			r.Put("/{fileID}/tags/{tagID}", h.attachTag)
			r.Delete("/{fileID}/tags/{tagID}", h.detachTag)
		})

		r.Route("/api/tags", func(r chi.Router) {
			r.Post("/", h.createTag)
			r.Get("/", h.listTags)
		})

		r.Get("/api/sync/{fileID}", h.sync)
	})

	return router
}
