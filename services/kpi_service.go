package services

import (
	"context"
	"fmt"
	"time"

	"contributorkpi/kpi"
	"contributorkpi/models"
	repository "contributorkpi/repositories"

	"github.com/sirupsen/logrus"
)

type KPIService interface {
	// CalculateUserKPI loads the stored activity of userID and scores it.
	CalculateUserKPI(ctx context.Context, userID string, window kpi.TimeWindow) (*kpi.Result, error)
	// CalculateFromBundle scores an activity bundle supplied by the caller.
	CalculateFromBundle(ctx context.Context, user models.User, bundle models.ActivityBundle, window kpi.TimeWindow) (*kpi.Result, error)
	RoleWeights() map[models.Role]kpi.Weights
}

type kpiService struct {
	repo   repository.ActivityRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewKPIService(repo repository.ActivityRepository, logger *logrus.Logger) KPIService {
	return &kpiService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *kpiService) CalculateUserKPI(ctx context.Context, userID string, window kpi.TimeWindow) (*kpi.Result, error) {
	log := s.logger.WithFields(logrus.Fields{"user_id": userID, "window": window})

	if _, err := kpi.ParseTimeWindow(string(window)); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load user")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	bundle, err := s.repo.LoadActivity(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load activity")
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	log.WithFields(logrus.Fields{
		"tasks":     len(bundle.Tasks),
		"projects":  len(bundle.Projects),
		"time_logs": len(bundle.TimeLogs),
		"comments":  len(bundle.Comments),
		"documents": len(bundle.Documents),
	}).Debug("Activity loaded")

	return s.CalculateFromBundle(ctx, *user, *bundle, window)
}

func (s *kpiService) CalculateFromBundle(ctx context.Context, user models.User, bundle models.ActivityBundle, window kpi.TimeWindow) (*kpi.Result, error) {
	calc, err := kpi.NewCalculator(user, bundle, window, kpi.WithNow(s.now()))
	if err != nil {
		return nil, err
	}

	result := calc.CalculateKPI()

	entry := s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
		"window":  window,
		"overall": result.Overall,
		"grade":   result.Grade,
	})
	if result.QualityOverride {
		entry.WithField("rated_documents", result.RatedDocuments).Info("KPI calculated; overall taken from quality score")
	} else {
		entry.Info("KPI calculated")
	}

	return &result, nil
}

func (s *kpiService) RoleWeights() map[models.Role]kpi.Weights {
	return kpi.RoleWeights()
}
