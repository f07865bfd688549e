package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/user-registry/internal/domain"
	"github.com/spec-kit/user-registry/internal/events"
	"github.com/spec-kit/user-registry/internal/observability"
	"github.com/spec-kit/user-registry/internal/repository"
)

// UserService owns the user registry: registration, lookup, deactivation and reporting.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// UserDependencies bundles collaborators for the user service.
// Only UserRepo is required.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// UserCreateInput describes a registration request.
type UserCreateInput struct {
	Name    string
	Email   string
	Age     int
	IsAdmin bool
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// CreateUser validates the input and registers an active user.
// Fails with domain.ErrUserFieldsRequired or domain.ErrUserUnderage.
func (s *UserService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	if err := domain.ValidateNewUser(input.Name, input.Email, input.Age); err != nil {
		s.metrics.RecordUserRejected(rejectReason(err))
		s.logger.Debug("user rejected", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:      s.users.NextID(),
		Name:    input.Name,
		Email:   input.Email,
		Age:     input.Age,
		Status:  domain.UserStatusActive,
		IsAdmin: input.IsAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.metrics.RecordUserCreated()
	s.refreshStatusGauges(ctx)
	s.logger.Info("user created", zap.String("user_id", user.ID), zap.Bool("is_admin", user.IsAdmin))

	s.publishEvent(ctx, events.Event{
		Type:   events.EventUserCreated,
		UserID: user.ID,
		Payload: events.UserCreatedPayload{
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
	return user, nil
}

// GetUserByID returns a copy of the user, or false when the id is unknown.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, bool) {
	return s.users.GetByID(ctx, id)
}

// DeactivateUser marks a non-admin user inactive.
// Returns false for unknown ids and administrators; true when the user is (already) inactive.
func (s *UserService) DeactivateUser(ctx context.Context, id string) bool {
	user, ok := s.users.GetByID(ctx, id)
	if !ok {
		s.metrics.RecordDeactivation(observability.DeactivationOutcomeNotFound)
		return false
	}
	if !user.CanBeDeactivated() {
		s.metrics.RecordDeactivation(observability.DeactivationOutcomeAdmin)
		s.logger.Info("admin user is exempt from deactivation", zap.String("user_id", id))
		return false
	}

	previous, ok := s.users.UpdateStatus(ctx, id, domain.UserStatusInactive)
	if !ok {
		s.metrics.RecordDeactivation(observability.DeactivationOutcomeNotFound)
		return false
	}
	s.metrics.RecordDeactivation(observability.DeactivationOutcomeDeactivated)

	if previous == domain.UserStatusInactive {
		return true
	}

	s.refreshStatusGauges(ctx)
	s.logger.Info("user deactivated", zap.String("user_id", id))
	s.publishEvent(ctx, events.Event{
		Type:   events.EventUserDeactivated,
		UserID: id,
		Payload: events.UserDeactivatedPayload{
			OldStatus: previous,
			NewStatus: domain.UserStatusInactive,
		},
	})
	return true
}

// GenerateUserReport renders every registered user, in registration order.
func (s *UserService) GenerateUserReport(ctx context.Context) string {
	return RenderUserReport(s.users.List(ctx))
}

// Reset empties the registry. Intended for test isolation only.
func (s *UserService) Reset(ctx context.Context) {
	s.users.Clear(ctx)
	s.refreshStatusGauges(ctx)
}

// Count returns the number of registered users.
func (s *UserService) Count(ctx context.Context) int {
	return s.users.Count(ctx)
}

func (s *UserService) refreshStatusGauges(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	counts := s.users.CountByStatus(ctx)
	byStatus := make(map[string]int, len(counts))
	for status, count := range counts {
		byStatus[string(status)] = count
	}
	s.metrics.SetUsersByStatus(byStatus)
}

func (s *UserService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed",
			zap.String("event_type", string(event.Type)),
			zap.String("user_id", event.UserID),
			zap.Error(err))
	}
}

func rejectReason(err error) string {
	if errors.Is(err, domain.ErrUserUnderage) {
		return observability.RejectReasonUnderage
	}
	return observability.RejectReasonMissingFields
}
