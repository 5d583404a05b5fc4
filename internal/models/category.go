package models

// TimestampLayout renders timestamps as ISO-8601 UTC strings, the form the
// schema stores in its TEXT columns (e.g. "2026-08-27T10:15:04.210Z").
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Category groups subscriptions for display. Default categories are seeded at
// migration time and carry is_default = true; user-created ones never do.
type Category struct {
	ID        string  `gorm:"column:id;primaryKey" json:"id"`
	Name      string  `gorm:"column:name;not null;unique" json:"name"`
	Color     *string `gorm:"column:color" json:"color"`
	IsDefault bool    `gorm:"column:is_default;not null;default:false" json:"is_default"`
	CreatedAt string  `gorm:"column:created_at;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt string  `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
}

// CreateCategoryPayload carries the caller-supplied fields for a new category.
type CreateCategoryPayload struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}
