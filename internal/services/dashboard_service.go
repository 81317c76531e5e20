package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	resp "pulso/internal/models/response_models"
	"pulso/internal/repositories"
	"pulso/pkg/cache"
)

const reportCacheTTL = 5 * time.Minute

type DashboardService interface {
	BuildReport(ctx context.Context, companyID uuid.UUID, windowDays int) (*resp.ClimateReport, error)
}

type dashboardService struct {
	repo        repositories.DashboardRepository
	reportCache cache.ReportCache
	logger      *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, reportCache cache.ReportCache, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, reportCache: reportCache, logger: logger}
}

// normalizeWindow clamps the window to the selector values the
// dashboard offers; anything else falls back to the default 30 days.
func normalizeWindow(days int) int {
	for _, w := range cache.ReportWindows {
		if days == w {
			return days
		}
	}
	return 30
}

func computeNPS(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var promoters, detractors int
	for _, v := range values {
		if v >= 9 {
			promoters++
		} else if v <= 6 {
			detractors++
		}
	}
	return float64(promoters-detractors) / float64(len(values)) * 100
}

func computeSatisfaction(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return avg / 10 * 100
}

// BuildReport recomputes the tenant's climate figures from stored
// responses over the trailing window. The redis cache only shortcuts
// the recomputation; no incremental aggregate state exists anywhere.
func (s *dashboardService) BuildReport(ctx context.Context, companyID uuid.UUID, windowDays int) (*resp.ClimateReport, error) {
	windowDays = normalizeWindow(windowDays)

	var cached resp.ClimateReport
	hit, err := s.reportCache.Get(ctx, companyID, windowDays, &cached)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	since := time.Now().UTC().AddDate(0, 0, -windowDays)

	totalEmployees, err := s.repo.CountEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}

	participantCount, err := s.repo.CountDistinctRespondents(ctx, companyID, since)
	if err != nil {
		return nil, err
	}

	var participationRate float64
	if totalEmployees > 0 {
		participationRate = float64(participantCount) / float64(totalEmployees) * 100
	}

	ratings, err := s.repo.RatingValues(ctx, companyID, since)
	if err != nil {
		return nil, err
	}

	report := &resp.ClimateReport{
		WindowDays:        windowDays,
		TotalEmployees:    totalEmployees,
		ParticipantCount:  participantCount,
		ParticipationRate: participationRate,
		NPS:               computeNPS(ratings),
		Satisfaction:      computeSatisfaction(ratings),
	}

	if err := s.reportCache.Set(ctx, companyID, windowDays, report, reportCacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}

	return report, nil
}
