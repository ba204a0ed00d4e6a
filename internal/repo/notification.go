package repo

import (
	"context"

	"github.com/KNICEX/pair-watcher/internal/entity"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(ctx context.Context, notification entity.Notification) (int64, error)
	FindPending(ctx context.Context) ([]entity.Notification, error)
	Delete(ctx context.Context, id int64) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepo{
		db: db,
	}
}

func (r *notificationRepo) Create(ctx context.Context, notification entity.Notification) (int64, error) {
	err := r.db.WithContext(ctx).Create(&notification).Error
	if err != nil {
		return 0, err
	}
	return notification.Id, nil
}

func (r *notificationRepo) FindPending(ctx context.Context) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := r.db.WithContext(ctx).Order("id").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Notification{}, id).Error
}
