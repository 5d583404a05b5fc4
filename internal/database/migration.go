package database

import (
	"fmt"
	"time"

	"github.com/coolcut/siphon/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Service{},
		&models.Subscription{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func strptr(s string) *string { return &s }

// Seed inserts the default categories and services. Existing rows are left
// untouched, so rerunning on every startup is a no-op.
func Seed(db *gorm.DB) error {
	now := time.Now().UTC().Format(models.TimestampLayout)

	categories := make([]models.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		c.IsDefault = true
		c.CreatedAt = now
		c.UpdatedAt = now
		categories = append(categories, c)
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	services := make([]models.Service, 0, len(defaultServices))
	for _, s := range defaultServices {
		s.IsDefault = true
		s.CreatedAt = now
		s.UpdatedAt = now
		services = append(services, s)
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&services).Error; err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	return nil
}

var defaultCategories = []models.Category{
	{ID: "cat-entertainment", Name: "Entertainment", Color: strptr("#E74C3C")},
	{ID: "cat-productivity", Name: "Productivity", Color: strptr("#3498DB")},
	{ID: "cat-cloud", Name: "Cloud Services", Color: strptr("#9B59B6")},
	{ID: "cat-music", Name: "Music", Color: strptr("#E67E22")},
	{ID: "cat-gaming", Name: "Gaming", Color: strptr("#2ECC71")},
	{ID: "cat-news", Name: "News & Media", Color: strptr("#1ABC9C")},
	{ID: "cat-health", Name: "Health & Fitness", Color: strptr("#F39C12")},
	{ID: "cat-education", Name: "Education", Color: strptr("#34495E")},
	{ID: "cat-other", Name: "Other", Color: strptr("#95A5A6")},
}

var defaultServices = []models.Service{
	{ID: "svc-netflix", Name: "Netflix", IconURL: strptr("https://logo.clearbit.com/netflix.com"), URL: strptr("https://netflix.com"), DefaultCategoryID: strptr("cat-entertainment")},
	{ID: "svc-spotify", Name: "Spotify", IconURL: strptr("https://logo.clearbit.com/spotify.com"), URL: strptr("https://spotify.com"), DefaultCategoryID: strptr("cat-music")},
	{ID: "svc-disney", Name: "Disney+", IconURL: strptr("https://logo.clearbit.com/disneyplus.com"), URL: strptr("https://disneyplus.com"), DefaultCategoryID: strptr("cat-entertainment")},
	{ID: "svc-youtube", Name: "YouTube Premium", IconURL: strptr("https://logo.clearbit.com/youtube.com"), URL: strptr("https://youtube.com"), DefaultCategoryID: strptr("cat-entertainment")},
	{ID: "svc-apple-music", Name: "Apple Music", IconURL: strptr("https://logo.clearbit.com/apple.com"), URL: strptr("https://music.apple.com"), DefaultCategoryID: strptr("cat-music")},
	{ID: "svc-github", Name: "GitHub Pro", IconURL: strptr("https://logo.clearbit.com/github.com"), URL: strptr("https://github.com"), DefaultCategoryID: strptr("cat-cloud")},
	{ID: "svc-icloud", Name: "iCloud+", IconURL: strptr("https://logo.clearbit.com/icloud.com"), URL: strptr("https://icloud.com"), DefaultCategoryID: strptr("cat-cloud")},
	{ID: "svc-dropbox", Name: "Dropbox", IconURL: strptr("https://logo.clearbit.com/dropbox.com"), URL: strptr("https://dropbox.com"), DefaultCategoryID: strptr("cat-cloud")},
	{ID: "svc-adobe", Name: "Adobe CC", IconURL: strptr("https://logo.clearbit.com/adobe.com"), URL: strptr("https://adobe.com"), DefaultCategoryID: strptr("cat-productivity")},
	{ID: "svc-chatgpt", Name: "ChatGPT Plus", IconURL: strptr("https://logo.clearbit.com/openai.com"), URL: strptr("https://chat.openai.com"), DefaultCategoryID: strptr("cat-productivity")},
	{ID: "svc-xbox", Name: "Xbox Game Pass", IconURL: strptr("https://logo.clearbit.com/xbox.com"), URL: strptr("https://xbox.com"), DefaultCategoryID: strptr("cat-gaming")},
	{ID: "svc-playstation", Name: "PlayStation Plus", IconURL: strptr("https://logo.clearbit.com/playstation.com"), URL: strptr("https://playstation.com"), DefaultCategoryID: strptr("cat-gaming")},
	{ID: "svc-notion", Name: "Notion", IconURL: strptr("https://logo.clearbit.com/notion.so"), URL: strptr("https://notion.so"), DefaultCategoryID: strptr("cat-productivity")},
	{ID: "svc-1password", Name: "1Password", IconURL: strptr("https://logo.clearbit.com/1password.com"), URL: strptr("https://1password.com"), DefaultCategoryID: strptr("cat-productivity")},
	{ID: "svc-todoist", Name: "Todoist", IconURL: strptr("https://logo.clearbit.com/todoist.com"), URL: strptr("https://todoist.com"), DefaultCategoryID: strptr("cat-productivity")},
}
