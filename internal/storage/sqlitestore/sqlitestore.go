// Package sqlitestore implements the storage interfaces on a local SQLite
// file. One Store owns one database handle for the lifetime of the process.
package sqlitestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coolcut/siphon/internal/config"
	"github.com/coolcut/siphon/internal/database"
	"github.com/coolcut/siphon/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store lazily opens its database on first use. Concurrent first callers all
// converge on the same single open attempt; a failed open is returned to every
// subsequent caller rather than retried.
type Store struct {
	cfg  config.DatabaseConfig
	once sync.Once
	db   *gorm.DB
	err  error
}

func New(cfg config.DatabaseConfig) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) conn(ctx context.Context) (*gorm.DB, error) {
	s.once.Do(func() {
		s.db, s.err = database.Open(s.cfg)
	})
	if s.err != nil {
		return nil, s.err
	}
	return s.db.WithContext(ctx), nil
}

// now captures the operation's timestamp once, so every column written within
// the same operation shares the same instant.
func now() string {
	return time.Now().UTC().Format(models.TimestampLayout)
}

// ── Categories ────────────────────────────────────────────

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, payload models.CreateCategoryPayload) (string, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return "", err
	}
	ts := now()
	category := models.Category{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Color:     payload.Color,
		IsDefault: false,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := db.Create(&category).Error; err != nil {
		return "", fmt.Errorf("insert category: %w", err)
	}
	return category.ID, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	// non-cascading: subscriptions referencing this category keep their id
	if err := db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ── Services ──────────────────────────────────────────────

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	services := []models.Service{}
	if err := db.Order("name ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *Store) CreateService(ctx context.Context, payload models.CreateServicePayload) (string, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return "", err
	}
	ts := now()
	service := models.Service{
		ID:                uuid.NewString(),
		Name:              payload.Name,
		IconURL:           payload.IconURL,
		URL:               payload.URL,
		DefaultCategoryID: payload.DefaultCategoryID,
		IsDefault:         false,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	if err := db.Create(&service).Error; err != nil {
		return "", fmt.Errorf("insert service: %w", err)
	}
	return service.ID, nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// ── Subscriptions ─────────────────────────────────────────

// subscriptionViewQuery flattens every subscription with its service and
// category display fields. Both joins are LEFT: a null or dangling reference
// yields null joined fields, never row exclusion. Rows without a
// next_billing_date sort first (SQLite's ASC null ordering), stably across
// calls.
const subscriptionViewQuery = `
SELECT
    sub.id,
    sub.custom_name,
    svc.name        AS service_name,
    svc.icon_url    AS service_icon_url,
    svc.url         AS service_url,
    cat.name        AS category_name,
    cat.color       AS category_color,
    sub.amount_cents,
    sub.currency,
    sub.billing_cycle,
    sub.start_date,
    sub.next_billing_date,
    sub.payment_method,
    sub.reminder_days,
    sub.note,
    sub.is_active,
    sub.cancelled_at,
    sub.created_at,
    sub.updated_at
FROM subscriptions sub
LEFT JOIN services   svc ON sub.service_id  = svc.id
LEFT JOIN categories cat ON sub.category_id = cat.id
ORDER BY sub.next_billing_date ASC`

func (s *Store) ListSubscriptionsView(ctx context.Context) ([]models.SubscriptionView, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	views := []models.SubscriptionView{}
	if err := db.Raw(subscriptionViewQuery).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return views, nil
}

func (s *Store) CreateSubscription(ctx context.Context, payload models.CreateSubscriptionPayload) (string, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	currency := payload.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	cycle := payload.BillingCycle
	if cycle == "" {
		cycle = models.DefaultCycle
	}
	reminderDays := payload.ReminderDays
	if reminderDays == nil {
		d := int64(models.DefaultReminderDays)
		reminderDays = &d
	}

	ts := now()
	subscription := models.Subscription{
		ID:              uuid.NewString(),
		ServiceID:       payload.ServiceID,
		CategoryID:      payload.CategoryID,
		CustomName:      payload.CustomName,
		AmountCents:     payload.AmountCents,
		Currency:        currency,
		BillingCycle:    cycle,
		StartDate:       payload.StartDate,
		NextBillingDate: payload.NextBillingDate,
		PaymentMethod:   payload.PaymentMethod,
		ReminderDays:    reminderDays,
		Note:            payload.Note,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	// is_active is not settable at creation; the schema default applies
	if err := db.Omit("is_active").Create(&subscription).Error; err != nil {
		return "", fmt.Errorf("insert subscription: %w", err)
	}
	return subscription.ID, nil
}

// UpdateSubscription applies a partial update: every present field of the
// payload becomes an assignment, an omitted field keeps its prior value, and
// updated_at is refreshed in the same UPDATE. A zero-field payload still
// touches updated_at. No matching row is a successful no-op, matching delete
// semantics.
func (s *Store) UpdateSubscription(ctx context.Context, id string, payload models.UpdateSubscriptionPayload) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	assignments := map[string]interface{}{}
	if payload.CustomName.Set {
		assignments["custom_name"] = payload.CustomName.Ptr()
	}
	if payload.ServiceID.Set {
		assignments["service_id"] = payload.ServiceID.Ptr()
	}
	if payload.CategoryID.Set {
		assignments["category_id"] = payload.CategoryID.Ptr()
	}
	if payload.AmountCents.Set {
		assignments["amount_cents"] = payload.AmountCents.Ptr()
	}
	if payload.Currency.Set {
		assignments["currency"] = payload.Currency.Ptr()
	}
	if payload.BillingCycle.Set {
		assignments["billing_cycle"] = payload.BillingCycle.Ptr()
	}
	if payload.StartDate.Set {
		assignments["start_date"] = payload.StartDate.Ptr()
	}
	if payload.NextBillingDate.Set {
		assignments["next_billing_date"] = payload.NextBillingDate.Ptr()
	}
	if payload.PaymentMethod.Set {
		assignments["payment_method"] = payload.PaymentMethod.Ptr()
	}
	if payload.ReminderDays.Set {
		assignments["reminder_days"] = payload.ReminderDays.Ptr()
	}
	if payload.Note.Set {
		assignments["note"] = payload.Note.Ptr()
	}
	if payload.IsActive.Set {
		assignments["is_active"] = payload.IsActive.Ptr()
	}
	if payload.CancelledAt.Set {
		assignments["cancelled_at"] = payload.CancelledAt.Ptr()
	}
	assignments["updated_at"] = now()

	if err := db.Model(&models.Subscription{}).Where("id = ?", id).Updates(assignments).Error; err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (s *Store) DeleteSubscription(ctx context.Context, id string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Subscription{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
