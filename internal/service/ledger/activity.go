package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

// AddActivity appends an activity of the caller.
func (s *Service) AddActivity(ctx context.Context, callerID uuid.UUID, input AddActivityInput) (*domain.Activity, error) {
	ctx, span := s.startSpan(ctx, "AddActivity", callerID)

	if err := input.Validate(); err != nil {
		return nil, endSpan(span, "AddActivity", err)
	}

	a, err := s.activities.Create(ctx, &domain.Activity{
		ID:           uuid.New(),
		UserID:       callerID,
		ActivityType: input.ActivityType,
		PostID:       input.PostID,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, endSpan(span, "AddActivity", err)
	}

	s.log.InfoContext(ctx, "activity added",
		slog.String("activity_id", a.ID.String()),
		slog.String("activity_type", a.ActivityType.String()))

	return a, endSpan(span, "AddActivity", nil)
}

// AddActivityRollback deletes an activity of the caller.
func (s *Service) AddActivityRollback(ctx context.Context, callerID, activityID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "AddActivityRollback", callerID)

	if err := requireID("activityId", activityID); err != nil {
		return endSpan(span, "AddActivityRollback", err)
	}

	a, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return endSpan(span, "AddActivityRollback", err)
	}
	if a.UserID != callerID {
		return endSpan(span, "AddActivityRollback", &domain.OwnershipError{Resource: "activity", ID: a.ID})
	}
	if err := s.activities.Delete(ctx, a.ID); err != nil {
		return endSpan(span, "AddActivityRollback", err)
	}

	s.log.InfoContext(ctx, "activity rolled back",
		slog.String("activity_id", activityID.String()))

	return endSpan(span, "AddActivityRollback", nil)
}

// ListActivities returns one page of the caller's activities.
func (s *Service) ListActivities(ctx context.Context, callerID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Activity], error) {
	page, err := s.activities.ListByUser(ctx, callerID, req)
	if err != nil {
		return domain.Page[domain.Activity]{}, wrap("ListActivities", err)
	}
	return page, nil
}
