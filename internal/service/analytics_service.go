package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/virally/virally-backend/internal/db"
	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/types"
)

// ============================================
// Analytics Service
// ============================================

const summaryCacheTTL = 5 * time.Minute

type AnalyticsEntryInput struct {
	Platform   string
	MetricDate time.Time
	Views      int64
	Likes      int64
	Comments   int64
	Shares     int64
	Followers  int64
	Revenue    decimal.Decimal
}

type AnalyticsService interface {
	Create(ctx context.Context, workspaceID, userID string, input AnalyticsEntryInput) (*repository.AnalyticsEntry, error)
	List(ctx context.Context, workspaceID, userID string, from, to *time.Time) ([]*repository.AnalyticsEntry, error)
	Summary(ctx context.Context, workspaceID, userID string, from, to time.Time) (*repository.AnalyticsSummary, error)
	Update(ctx context.Context, entryID, userID string, input AnalyticsEntryInput) (*repository.AnalyticsEntry, error)
	Delete(ctx context.Context, entryID, userID string) error
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	access        AccessService
	cache         *db.RedisDB
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, access AccessService, cache *db.RedisDB) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		access:        access,
		cache:         cache,
	}
}

func validateEntryInput(input AnalyticsEntryInput) error {
	if !types.IsValidPlatform(input.Platform) {
		return ErrInvalidInput
	}
	if input.MetricDate.IsZero() {
		return ErrInvalidInput
	}
	if input.Views < 0 || input.Likes < 0 || input.Comments < 0 || input.Shares < 0 || input.Followers < 0 {
		return ErrInvalidInput
	}
	if input.Revenue.IsNegative() {
		return ErrInvalidInput
	}
	return nil
}

func summaryCacheKey(workspaceID string, from, to time.Time) string {
	return fmt.Sprintf("analytics:summary:%s:%s:%s",
		workspaceID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (s *analyticsService) invalidateSummaries(ctx context.Context, workspaceID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, "analytics:summary:"+workspaceID+":*"); err != nil {
		log.Printf("[Analytics] Failed to invalidate summary cache: %v", err)
	}
}

func (s *analyticsService) Create(ctx context.Context, workspaceID, userID string, input AnalyticsEntryInput) (*repository.AnalyticsEntry, error) {
	if _, _, err := s.access.RequireEditor(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	entry := &repository.AnalyticsEntry{
		WorkspaceID: workspaceID,
		Platform:    input.Platform,
		MetricDate:  input.MetricDate,
		Views:       input.Views,
		Likes:       input.Likes,
		Comments:    input.Comments,
		Shares:      input.Shares,
		Followers:   input.Followers,
		Revenue:     input.Revenue,
		CreatedBy:   userID,
	}
	if err := s.analyticsRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx, workspaceID)
	return entry, nil
}

func (s *analyticsService) List(ctx context.Context, workspaceID, userID string, from, to *time.Time) ([]*repository.AnalyticsEntry, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.analyticsRepo.FindByWorkspace(ctx, workspaceID, from, to)
}

// Summary aggregates entries over a date range, served from Redis when
// a cached copy exists.
func (s *analyticsService) Summary(ctx context.Context, workspaceID, userID string, from, to time.Time) (*repository.AnalyticsSummary, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrInvalidInput
	}

	key := summaryCacheKey(workspaceID, from, to)
	if s.cache != nil {
		cached := &repository.AnalyticsSummary{}
		if err := s.cache.GetCache(ctx, key, cached); err == nil {
			return cached, nil
		}
	}

	summary, err := s.analyticsRepo.Summarize(ctx, workspaceID, from, to)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, key, summary, summaryCacheTTL); err != nil {
			log.Printf("[Analytics] Failed to cache summary: %v", err)
		}
	}
	return summary, nil
}

func (s *analyticsService) Update(ctx context.Context, entryID, userID string, input AnalyticsEntryInput) (*repository.AnalyticsEntry, error) {
	entry, err := s.analyticsRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, entry.WorkspaceID, userID); err != nil {
		return nil, err
	}
	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	entry.Platform = input.Platform
	entry.MetricDate = input.MetricDate
	entry.Views = input.Views
	entry.Likes = input.Likes
	entry.Comments = input.Comments
	entry.Shares = input.Shares
	entry.Followers = input.Followers
	entry.Revenue = input.Revenue

	if err := s.analyticsRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx, entry.WorkspaceID)
	return entry, nil
}

func (s *analyticsService) Delete(ctx context.Context, entryID, userID string) error {
	entry, err := s.analyticsRepo.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, entry.WorkspaceID, userID); err != nil {
		return err
	}

	if err := s.analyticsRepo.Delete(ctx, entryID); err != nil {
		return err
	}

	s.invalidateSummaries(ctx, entry.WorkspaceID)
	return nil
}
