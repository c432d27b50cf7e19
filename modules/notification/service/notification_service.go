package service

import (
	"context"
	"time"

	coreEntity "surfplan-api/core/entity"
	"surfplan-api/core/params"
	"surfplan-api/modules/notification/dto"
	"surfplan-api/modules/notification/entity"
	"surfplan-api/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// Create records a surf alert. It reports false when the alert was already
// delivered for the same window.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (bool, error) {
	now := time.Now().UTC()
	notif := &entity.Notification{
		UserID:      req.UserID,
		SpotID:      req.SpotID,
		Message:     req.Message,
		WindowStart: req.WindowStart,
		Score:       req.Score,
		IsRead:      false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByUserID(ctx, userID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
