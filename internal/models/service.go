package models

// Service is a known subscription provider (e.g. a streaming platform).
// DefaultCategoryID is a weak reference: the category it points at may be
// deleted independently and nothing here enforces its existence.
type Service struct {
	ID                string  `gorm:"column:id;primaryKey" json:"id"`
	Name              string  `gorm:"column:name;not null;unique" json:"name"`
	IconURL           *string `gorm:"column:icon_url" json:"icon_url"`
	URL               *string `gorm:"column:url" json:"url"`
	DefaultCategoryID *string `gorm:"column:default_category_id" json:"default_category_id"`
	IsDefault         bool    `gorm:"column:is_default;not null;default:false" json:"is_default"`
	CreatedAt         string  `gorm:"column:created_at;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt         string  `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
}

// CreateServicePayload carries the caller-supplied fields for a new service.
type CreateServicePayload struct {
	Name              string  `json:"name"`
	IconURL           *string `json:"icon_url"`
	URL               *string `json:"url"`
	DefaultCategoryID *string `json:"default_category_id"`
}
