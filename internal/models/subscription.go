package models

// BillingCycle is the closed set of supported billing periods. The
// subscriptions table carries a CHECK constraint over the same five values.
type BillingCycle string

const (
	CycleWeekly       BillingCycle = "weekly"
	CycleMonthly      BillingCycle = "monthly"
	CycleQuarterly    BillingCycle = "quarterly"
	CycleSemiAnnually BillingCycle = "semi_annually"
	CycleYearly       BillingCycle = "yearly"
)

// Defaults applied at creation when the caller omits the field.
const (
	DefaultCurrency     = "EUR"
	DefaultCycle        = CycleMonthly
	DefaultReminderDays = 0
)

// Subscription is the authoritative record of a recurring payment. Amounts are
// stored in integer minor units (cents) to avoid floating-point rounding.
// ServiceID and CategoryID are weak references; deleting the row they point at
// leaves them dangling on purpose.
type Subscription struct {
	ID              string       `gorm:"column:id;primaryKey" json:"id"`
	ServiceID       *string      `gorm:"column:service_id;index" json:"service_id"`
	CategoryID      *string      `gorm:"column:category_id;index" json:"category_id"`
	CustomName      string       `gorm:"column:custom_name;not null" json:"custom_name"`
	AmountCents     int64        `gorm:"column:amount_cents;not null" json:"amount_cents"`
	Currency        string       `gorm:"column:currency;not null;default:'EUR'" json:"currency"`
	BillingCycle    BillingCycle `gorm:"column:billing_cycle;not null;default:'monthly';check:billing_cycle IN ('weekly','monthly','quarterly','semi_annually','yearly')" json:"billing_cycle"`
	StartDate       string       `gorm:"column:start_date;not null" json:"start_date"`
	NextBillingDate *string      `gorm:"column:next_billing_date;index" json:"next_billing_date"`
	PaymentMethod   *string      `gorm:"column:payment_method" json:"payment_method"`
	ReminderDays    *int64       `gorm:"column:reminder_days;default:0" json:"reminder_days"`
	Note            *string      `gorm:"column:note" json:"note"`
	IsActive        bool         `gorm:"column:is_active;not null;default:true;index" json:"is_active"`
	CancelledAt     *string      `gorm:"column:cancelled_at" json:"cancelled_at"`
	CreatedAt       string       `gorm:"column:created_at;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt       string       `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
}

// CreateSubscriptionPayload carries the fields for a new subscription.
// CustomName, AmountCents and StartDate are mandatory; nil optionals fall back
// to the documented defaults. IsActive is not settable at creation — the
// schema default (active) applies.
type CreateSubscriptionPayload struct {
	ServiceID       *string      `json:"service_id"`
	CategoryID      *string      `json:"category_id"`
	CustomName      string       `json:"custom_name"`
	AmountCents     int64        `json:"amount_cents"`
	Currency        string       `json:"currency"`
	BillingCycle    BillingCycle `json:"billing_cycle"`
	StartDate       string       `json:"start_date"`
	NextBillingDate *string      `json:"next_billing_date"`
	PaymentMethod   *string      `json:"payment_method"`
	ReminderDays    *int64       `json:"reminder_days"`
	Note            *string      `json:"note"`
}

// UpdateSubscriptionPayload is a patch: each field is tri-state (absent /
// null / value). Only fields that are present produce an assignment; an
// explicit JSON null clears the column. updated_at is always refreshed by the
// store regardless of which fields are present.
type UpdateSubscriptionPayload struct {
	CustomName      Optional[string]       `json:"custom_name"`
	ServiceID       Optional[string]       `json:"service_id"`
	CategoryID      Optional[string]       `json:"category_id"`
	AmountCents     Optional[int64]        `json:"amount_cents"`
	Currency        Optional[string]       `json:"currency"`
	BillingCycle    Optional[BillingCycle] `json:"billing_cycle"`
	StartDate       Optional[string]       `json:"start_date"`
	NextBillingDate Optional[string]       `json:"next_billing_date"`
	PaymentMethod   Optional[string]       `json:"payment_method"`
	ReminderDays    Optional[int64]        `json:"reminder_days"`
	Note            Optional[string]       `json:"note"`
	IsActive        Optional[bool]         `json:"is_active"`
	CancelledAt     Optional[string]       `json:"cancelled_at"`
}

// SubscriptionView is the flattened row returned by the list query: the
// subscription joined with its service and category display fields. It is a
// derived projection, recomputed on every read, never stored.
type SubscriptionView struct {
	ID              string       `gorm:"column:id" json:"id"`
	CustomName      string       `gorm:"column:custom_name" json:"custom_name"`
	ServiceName     *string      `gorm:"column:service_name" json:"service_name"`
	ServiceIconURL  *string      `gorm:"column:service_icon_url" json:"service_icon_url"`
	ServiceURL      *string      `gorm:"column:service_url" json:"service_url"`
	CategoryName    *string      `gorm:"column:category_name" json:"category_name"`
	CategoryColor   *string      `gorm:"column:category_color" json:"category_color"`
	AmountCents     int64        `gorm:"column:amount_cents" json:"amount_cents"`
	Currency        string       `gorm:"column:currency" json:"currency"`
	BillingCycle    BillingCycle `gorm:"column:billing_cycle" json:"billing_cycle"`
	StartDate       string       `gorm:"column:start_date" json:"start_date"`
	NextBillingDate *string      `gorm:"column:next_billing_date" json:"next_billing_date"`
	PaymentMethod   *string      `gorm:"column:payment_method" json:"payment_method"`
	ReminderDays    *int64       `gorm:"column:reminder_days" json:"reminder_days"`
	Note            *string      `gorm:"column:note" json:"note"`
	IsActive        bool         `gorm:"column:is_active" json:"is_active"`
	CancelledAt     *string      `gorm:"column:cancelled_at" json:"cancelled_at"`
	CreatedAt       string       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       string       `gorm:"column:updated_at" json:"updated_at"`
}
