package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dsa-onboarding/internal/onboarding/models"
	id "dsa-onboarding/pkg/domain"
	"dsa-onboarding/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	owner id.UserID
	now   time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.owner = id.UserID(uuid.New())
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func (s *InMemorySuite) newApp(offset time.Duration) *models.Application {
	app := models.NewApplication(id.NewApplicationID(), s.owner, models.Individual{}, "", s.now.Add(offset))
	app.Status = models.StatusAt(models.StepKYC)
	return app
}

func (s *InMemorySuite) TestCreateAndFind() {
	ctx := context.Background()
	app := s.newApp(0)
	s.Require().NoError(s.store.Create(ctx, app))
	s.Equal(int64(1), app.Version)

	s.Run("returns a copy", func() {
		found, err := s.store.FindByID(ctx, app.ID)
		s.Require().NoError(err)
		found.CompletedSteps[models.StepKYC] = true

		again, err := s.store.FindByID(ctx, app.ID)
		s.Require().NoError(err)
		s.False(again.CompletedSteps[models.StepKYC])
	})

	s.Run("duplicate create conflicts", func() {
		s.ErrorIs(s.store.Create(ctx, app), sentinel.ErrConflict)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.FindByID(ctx, id.NewApplicationID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemorySuite) TestFindByOwnerOrdersByCreation() {
	ctx := context.Background()
	later := s.newApp(time.Hour)
	earlier := s.newApp(0)
	s.Require().NoError(s.store.Create(ctx, later))
	s.Require().NoError(s.store.Create(ctx, earlier))
	other := models.NewApplication(id.NewApplicationID(), id.UserID(uuid.New()), models.Individual{}, "", s.now)
	s.Require().NoError(s.store.Create(ctx, other))

	apps, err := s.store.FindByOwner(ctx, s.owner)
	s.Require().NoError(err)
	s.Require().Len(apps, 2)
	s.Equal(earlier.ID, apps[0].ID)
	s.Equal(later.ID, apps[1].ID)
}

func (s *InMemorySuite) TestUpdateChecksVersion() {
	ctx := context.Background()
	app := s.newApp(0)
	s.Require().NoError(s.store.Create(ctx, app))

	stale, err := s.store.FindByID(ctx, app.ID)
	s.Require().NoError(err)

	app.CompletedSteps[models.StepKYC] = true
	s.Require().NoError(s.store.Update(ctx, app))
	s.Equal(int64(2), app.Version)

	stale.BusinessName = "stale write"
	s.ErrorIs(s.store.Update(ctx, stale), sentinel.ErrConflict)

	found, err := s.store.FindByID(ctx, app.ID)
	s.Require().NoError(err)
	s.True(found.CompletedSteps[models.StepKYC])
	s.Empty(found.BusinessName)

	missing := s.newApp(0)
	s.ErrorIs(s.store.Update(ctx, missing), sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestConcurrentUpdatesOneWins() {
	ctx := context.Background()
	app := s.newApp(0)
	s.Require().NoError(s.store.Create(ctx, app))

	const writers = 20
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			copyOf, err := s.store.FindByID(ctx, app.ID)
			if err != nil {
				return
			}
			copyOf.Version = 1
			if s.store.Update(ctx, copyOf) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), wins.Load())
}
