package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"contributorkpi/kpi"
	"contributorkpi/models"
	repository "contributorkpi/repositories"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users     map[string]models.User
	bundles   map[string]models.ActivityBundle
	loadErr   error
	loadCalls int
}

func (f *fakeRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeRepo) LoadActivity(ctx context.Context, userID string) (*models.ActivityBundle, error) {
	f.loadCalls++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	b := f.bundles[userID]
	return &b, nil
}

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo repository.ActivityRepository) *kpiService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &kpiService{repo: repo, logger: log, now: func() time.Time { return fixedNow }}
}

func TestCalculateUserKPI(t *testing.T) {
	rating := 4.5
	repo := &fakeRepo{
		users: map[string]models.User{"u1": {ID: "u1", Role: "director"}},
		bundles: map[string]models.ActivityBundle{"u1": {
			Documents: []models.Document{{UploadedBy: "u1", ReviewScore: &rating, UploadedAt: "2026-10-10"}},
		}},
	}
	svc := newTestService(repo)

	result, err := svc.CalculateUserKPI(context.Background(), "u1", kpi.Window30Days)
	require.NoError(t, err)

	assert.Equal(t, "u1", result.UserID)
	assert.Equal(t, 90.0, result.Quality)
	assert.Equal(t, 90.0, result.Overall)
	assert.Equal(t, "A", result.Grade)
	assert.True(t, fixedNow.Equal(result.CalculatedAt))
}

func TestCalculateUserKPI_Errors(t *testing.T) {
	t.Run("invalid window is rejected before loading", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]models.User{"u1": {ID: "u1"}}}
		_, err := newTestService(repo).CalculateUserKPI(context.Background(), "u1", "weekly")
		assert.ErrorIs(t, err, kpi.ErrInvalidTimeWindow)
		assert.Zero(t, repo.loadCalls)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := newTestService(&fakeRepo{}).CalculateUserKPI(context.Background(), "ghost", kpi.WindowYTD)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("load failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo := &fakeRepo{users: map[string]models.User{"u1": {ID: "u1"}}, loadErr: boom}
		_, err := newTestService(repo).CalculateUserKPI(context.Background(), "u1", kpi.Window90Days)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCalculateFromBundle_Empty(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	result, err := svc.CalculateFromBundle(context.Background(), models.User{ID: "u1", Role: "member"}, models.ActivityBundle{}, kpi.Window90Days)
	require.NoError(t, err)

	assert.Equal(t, 85.0, result.Efficiency)
	assert.False(t, result.QualityOverride)
	assert.Equal(t, "F", result.Grade)
}

func TestRoleWeights(t *testing.T) {
	weights := newTestService(&fakeRepo{}).RoleWeights()
	assert.Len(t, weights, 3)
	assert.Contains(t, weights, models.RoleManager)
}
