package storage

import (
	"context"

	"github.com/coolcut/siphon/internal/models"
)

type CategoryStorage interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, payload models.CreateCategoryPayload) (string, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ServiceStorage interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, payload models.CreateServicePayload) (string, error)
	DeleteService(ctx context.Context, id string) error
}

type SubscriptionStorage interface {
	ListSubscriptionsView(ctx context.Context) ([]models.SubscriptionView, error)
	CreateSubscription(ctx context.Context, payload models.CreateSubscriptionPayload) (string, error)
	UpdateSubscription(ctx context.Context, id string, payload models.UpdateSubscriptionPayload) error
	DeleteSubscription(ctx context.Context, id string) error
}

// Store is the full persistence surface the application depends on.
type Store interface {
	CategoryStorage
	ServiceStorage
	SubscriptionStorage
}
