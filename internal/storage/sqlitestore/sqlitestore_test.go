package sqlitestore

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/coolcut/siphon/internal/config"
	"github.com/coolcut/siphon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(config.DatabaseConfig{Path: ":memory:"})
}

func strptr(s string) *string { return &s }

func minimalSubscription(name string) models.CreateSubscriptionPayload {
	return models.CreateSubscriptionPayload{
		CustomName:  name,
		AmountCents: 1499,
		StartDate:   "2026-01-01",
	}
}

func findView(views []models.SubscriptionView, id string) *models.SubscriptionView {
	for i := range views {
		if views[i].ID == id {
			return &views[i]
		}
	}
	return nil
}

func TestIDUniqueness(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		id, err := store.CreateCategory(ctx, models.CreateCategoryPayload{Name: fmt.Sprintf("Cat %d", i)})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		id, err = store.CreateService(ctx, models.CreateServicePayload{Name: fmt.Sprintf("Svc %d", i)})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		id, err = store.CreateSubscription(ctx, minimalSubscription(fmt.Sprintf("Sub %d", i)))
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestListCategoriesOrderedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateCategory(ctx, models.CreateCategoryPayload{Name: "Zeta", Color: strptr("#000000")})
	require.NoError(t, err)
	_, err = store.CreateCategory(ctx, models.CreateCategoryPayload{Name: "Alpha"})
	require.NoError(t, err)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	// seeded defaults plus the two created above
	assert.GreaterOrEqual(t, len(categories), 2)
	assert.True(t, sort.SliceIsSorted(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	}), "categories not sorted by name")

	for _, c := range categories {
		if c.Name == "Alpha" || c.Name == "Zeta" {
			assert.False(t, c.IsDefault, "user-created category marked default")
			assert.NotEmpty(t, c.CreatedAt)
			assert.Equal(t, c.CreatedAt, c.UpdatedAt)
		}
	}
}

func TestSeededDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 9)
	for _, c := range categories {
		assert.True(t, c.IsDefault)
	}

	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 15)
}

func TestCreateSubscriptionAppliesDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateSubscription(ctx, minimalSubscription("Netflix family plan"))
	require.NoError(t, err)

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, id, v.ID)
	assert.Equal(t, "Netflix family plan", v.CustomName)
	assert.Equal(t, int64(1499), v.AmountCents)
	assert.Equal(t, "EUR", v.Currency)
	assert.Equal(t, models.CycleMonthly, v.BillingCycle)
	assert.Equal(t, "2026-01-01", v.StartDate)
	require.NotNil(t, v.ReminderDays)
	assert.Equal(t, int64(0), *v.ReminderDays)
	assert.True(t, v.IsActive)
	assert.Nil(t, v.CancelledAt)
	assert.Nil(t, v.ServiceName)
	assert.Nil(t, v.CategoryName)
	assert.Equal(t, v.CreatedAt, v.UpdatedAt)
}

func TestCreateSubscriptionKeepsExplicitValues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	days := int64(3)
	payload := models.CreateSubscriptionPayload{
		CustomName:      "Cloud backup",
		AmountCents:     250,
		Currency:        "USD",
		BillingCycle:    models.CycleYearly,
		StartDate:       "2025-06-15",
		NextBillingDate: strptr("2026-06-15"),
		PaymentMethod:   strptr("card"),
		ReminderDays:    &days,
		Note:            strptr("family account"),
	}
	id, err := store.CreateSubscription(ctx, payload)
	require.NoError(t, err)

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	v := findView(views, id)
	require.NotNil(t, v)
	assert.Equal(t, "USD", v.Currency)
	assert.Equal(t, models.CycleYearly, v.BillingCycle)
	require.NotNil(t, v.NextBillingDate)
	assert.Equal(t, "2026-06-15", *v.NextBillingDate)
	require.NotNil(t, v.ReminderDays)
	assert.Equal(t, int64(3), *v.ReminderDays)
	require.NotNil(t, v.Note)
	assert.Equal(t, "family account", *v.Note)
}

func TestUpdateSubscriptionDoesNotClobberOmittedFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := minimalSubscription("Music")
	payload.Note = strptr("a")
	payload.PaymentMethod = strptr("card")
	id, err := store.CreateSubscription(ctx, payload)
	require.NoError(t, err)

	err = store.UpdateSubscription(ctx, id, models.UpdateSubscriptionPayload{
		Note: models.Some("b"),
	})
	require.NoError(t, err)

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	v := findView(views, id)
	require.NotNil(t, v)
	require.NotNil(t, v.Note)
	assert.Equal(t, "b", *v.Note)
	require.NotNil(t, v.PaymentMethod)
	assert.Equal(t, "card", *v.PaymentMethod)
}

func TestUpdateSubscriptionExplicitNullClearsField(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := minimalSubscription("News")
	payload.Note = strptr("keep me not")
	id, err := store.CreateSubscription(ctx, payload)
	require.NoError(t, err)

	err = store.UpdateSubscription(ctx, id, models.UpdateSubscriptionPayload{
		Note: models.Null[string](),
	})
	require.NoError(t, err)

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	v := findView(views, id)
	require.NotNil(t, v)
	assert.Nil(t, v.Note)
}

func TestUpdateSubscriptionEmptyPatchTouchesUpdatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateSubscription(ctx, minimalSubscription("Gym"))
	require.NoError(t, err)

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	before := findView(views, id)
	require.NotNil(t, before)

	time.Sleep(5 * time.Millisecond)

	err = store.UpdateSubscription(ctx, id, models.UpdateSubscriptionPayload{})
	require.NoError(t, err)

	views, err = store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	after := findView(views, id)
	require.NotNil(t, after)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	// ISO-8601 strings compare chronologically
	assert.Greater(t, after.UpdatedAt, before.UpdatedAt)
	assert.Equal(t, before.CustomName, after.CustomName)
}

func TestUpdateSubscriptionUnknownIDIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.UpdateSubscription(ctx, "no-such-id", models.UpdateSubscriptionPayload{
		Note: models.Some("ignored"),
	})
	assert.NoError(t, err)
}

func TestDeleteSubscriptionIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateSubscription(ctx, minimalSubscription("Short lived"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteSubscription(ctx, id))
	require.NoError(t, store.DeleteSubscription(ctx, id))

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	assert.Nil(t, findView(views, id))
}

func TestDeleteCategoryAndServiceAreIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	catID, err := store.CreateCategory(ctx, models.CreateCategoryPayload{Name: "Ephemeral"})
	require.NoError(t, err)
	require.NoError(t, store.DeleteCategory(ctx, catID))
	require.NoError(t, store.DeleteCategory(ctx, catID))
	require.NoError(t, store.DeleteCategory(ctx, "never-existed"))

	svcID, err := store.CreateService(ctx, models.CreateServicePayload{Name: "Ephemeral Svc"})
	require.NoError(t, err)
	require.NoError(t, store.DeleteService(ctx, svcID))
	require.NoError(t, store.DeleteService(ctx, svcID))
}

func TestViewPreservesSubscriptionsWithDanglingReferences(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	svcID, err := store.CreateService(ctx, models.CreateServicePayload{
		Name:    "Doomed Service",
		IconURL: strptr("https://example.com/icon.png"),
	})
	require.NoError(t, err)

	payload := minimalSubscription("Orphan to be")
	payload.ServiceID = &svcID
	subID, err := store.CreateSubscription(ctx, payload)
	require.NoError(t, err)

	views, err := store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	v := findView(views, subID)
	require.NotNil(t, v)
	require.NotNil(t, v.ServiceName)
	assert.Equal(t, "Doomed Service", *v.ServiceName)

	// deleting the service must not touch or exclude the subscription
	require.NoError(t, store.DeleteService(ctx, svcID))

	views, err = store.ListSubscriptionsView(ctx)
	require.NoError(t, err)
	v = findView(views, subID)
	require.NotNil(t, v, "subscription excluded after its service was deleted")
	assert.Nil(t, v.ServiceName)
	assert.Nil(t, v.ServiceIconURL)
	assert.Nil(t, v.ServiceURL)
	assert.Equal(t, "Orphan to be", v.CustomName)
}

func TestViewOrderedByNextBillingDateNullsFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	later := minimalSubscription("Later")
	later.NextBillingDate = strptr("2026-09-01")
	laterID, err := store.CreateSubscription(ctx, later)
	require.NoError(t, err)

	sooner := minimalSubscription("Sooner")
	sooner.NextBillingDate = strptr("2026-08-01")
	soonerID, err := store.CreateSubscription(ctx, sooner)
	require.NoError(t, err)

	undatedID, err := store.CreateSubscription(ctx, minimalSubscription("Undated"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		views, err := store.ListSubscriptionsView(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, undatedID, views[0].ID, "null next_billing_date sorts first")
		assert.Equal(t, soonerID, views[1].ID)
		assert.Equal(t, laterID, views[2].ID)
	}
}

func TestConcurrentFirstUseSharesOneHandle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(n int) {
			_, err := store.CreateCategory(ctx, models.CreateCategoryPayload{Name: fmt.Sprintf("Racing %d", n)})
			errs <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-errs)
	}

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	// 9 seeded + 8 created: every caller hit the same database
	assert.Len(t, categories, 17)
}
