// Package store persists onboarding applications with optimistic versioning.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"dsa-onboarding/internal/onboarding/models"
	id "dsa-onboarding/pkg/domain"
	"dsa-onboarding/pkg/platform/sentinel"
)

// InMemory keeps applications as encoded documents so callers never share
// state with what is stored.
type InMemory struct {
	mu   sync.RWMutex
	apps map[id.ApplicationID][]byte
}

func NewInMemory() *InMemory {
	return &InMemory{apps: make(map[id.ApplicationID][]byte)}
}

func (s *InMemory) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[app.ID]; ok {
		return sentinel.ErrConflict
	}
	app.Version = 1
	doc, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	s.apps[app.ID] = doc
	return nil
}

func (s *InMemory) FindByID(_ context.Context, appID id.ApplicationID) (*models.Application, error) {
	s.mu.RLock()
	doc, ok := s.apps[appID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return decode(doc)
}

func (s *InMemory) FindByOwner(_ context.Context, owner id.UserID) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Application
	for _, doc := range s.apps {
		app, err := decode(doc)
		if err != nil {
			return nil, err
		}
		if app.OwnerID == owner {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Update writes app if its Version matches the stored one and bumps Version.
func (s *InMemory) Update(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.apps[app.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	current, err := decode(doc)
	if err != nil {
		return err
	}
	if current.Version != app.Version {
		return sentinel.ErrConflict
	}
	next := *app
	next.Version = app.Version + 1
	encoded, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	s.apps[app.ID] = encoded
	app.Version = next.Version
	return nil
}

func decode(doc []byte) (*models.Application, error) {
	var app models.Application
	if err := json.Unmarshal(doc, &app); err != nil {
		return nil, fmt.Errorf("decode application: %w", err)
	}
	if app.CompletedSteps == nil {
		app.CompletedSteps = map[models.StepID]bool{}
	}
	return &app, nil
}
