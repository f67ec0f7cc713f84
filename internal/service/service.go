// Package service implements the chat turn orchestration.
package service

import (
	"charchat/internal/catalog"
	"charchat/internal/llm"
	"charchat/internal/store"
)

// Service orchestrates chat turns over the store and the completion API.
type Service struct {
	store   store.Store
	llm     llm.CompletionClient
	catalog *catalog.Catalog
	model   string
}

// New creates a service. completion may be nil when no completion-API
// credential is configured; turns then short-circuit with
// domain.ErrCompletionNotConfigured instead of calling out.
func New(st store.Store, completion llm.CompletionClient, cat *catalog.Catalog, model string) *Service {
	return &Service{
		store:   st,
		llm:     completion,
		catalog: cat,
		model:   model,
	}
}

// Characters returns the category-to-names catalog mapping.
func (s *Service) Characters() map[string][]string {
	return s.catalog.Categories()
}
