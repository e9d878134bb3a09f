package model

import (
	"time"
)

// PremiumContentModel is an admin-authored paid content item.
type PremiumContentModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"column:title;size:255;not null" json:"title"`
	Description     *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	ContentType     string    `gorm:"column:content_type;type:varchar(30);not null" json:"content_type"`
	Subject         *string   `gorm:"column:subject;size:255" json:"subject,omitempty"`
	ClassLevel      *int      `gorm:"column:class_level" json:"class_level,omitempty"`
	EducationSystem string    `gorm:"column:education_system;type:varchar(20);not null;default:'anglophone'" json:"education_system"`
	IsPremium       bool      `gorm:"column:is_premium;not null;default:false" json:"is_premium"`
	Price           float64   `gorm:"column:price;type:numeric(10,2);not null;default:0" json:"price"`
	FilePath        *string   `gorm:"column:file_path;size:512" json:"file_path,omitempty"`
	CreatedBy       uint      `gorm:"column:created_by;index;not null" json:"created_by"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PremiumContentModel) TableName() string {
	return "premium_content"
}

// CMS content categories.
const (
	ContentQuiz             = "quiz"
	ContentLessonPlan       = "lesson_plan"
	ContentSchemeOfWork     = "scheme_of_work"
	ContentPedagogicProject = "pedagogic_project"
	ContentResource         = "resource"
)

func IsValidContentType(t string) bool {
	switch t {
	case ContentQuiz, ContentLessonPlan, ContentSchemeOfWork, ContentPedagogicProject, ContentResource:
		return true
	}
	return false
}

// SubscriptionPackageModel bundles content items for a fixed duration.
type SubscriptionPackageModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;size:255;not null" json:"name"`
	Description  *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Price        float64   `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	DurationDays int       `gorm:"column:duration_days;not null" json:"duration_days"`
	CreatedBy    uint      `gorm:"column:created_by;index;not null" json:"created_by"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubscriptionPackageModel) TableName() string {
	return "subscription_packages"
}

type PackageContentModel struct {
	ID        uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PackageID uint `gorm:"column:package_id;index;not null" json:"package_id"`
	ContentID uint `gorm:"column:content_id;index;not null" json:"content_id"`
}

func (PackageContentModel) TableName() string {
	return "package_content"
}

// SubscriptionModel is one user's purchase of a package.
type SubscriptionModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	PackageID uint      `gorm:"column:package_id;index;not null" json:"package_id"`
	Amount    float64   `gorm:"column:amount;type:numeric(10,2);not null;default:0" json:"amount"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ContentSubscriptionModel links a user to a single content item.
type ContentSubscriptionModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	ContentID uint      `gorm:"column:content_id;index;not null" json:"content_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContentSubscriptionModel) TableName() string {
	return "content_subscriptions"
}
