package dto

import (
	cmsModel "schoolhub_backend/internals/features/cms/model"
)

type CreateContentRequest struct {
	Title           string  `json:"title" form:"title" validate:"required,min=1"`
	Description     *string `json:"description" form:"description"`
	ContentType     string  `json:"content_type" form:"content_type" validate:"required,oneof=quiz lesson_plan scheme_of_work pedagogic_project resource"`
	Subject         *string `json:"subject" form:"subject"`
	ClassLevel      *int    `json:"class_level" form:"class_level" validate:"omitempty,min=1,max=6"`
	EducationSystem string  `json:"education_system" form:"education_system" validate:"omitempty,oneof=anglophone francophone"`
	IsPremium       bool    `json:"is_premium" form:"is_premium"`
	Price           float64 `json:"price" form:"price" validate:"min=0"`
}

type CreatePackageRequest struct {
	Name         string  `json:"name" validate:"required,min=1"`
	Description  *string `json:"description"`
	Price        float64 `json:"price" validate:"min=0"`
	DurationDays int     `json:"duration_days" validate:"required,min=1"`
	ContentIDs   []uint  `json:"content_ids" validate:"required"`
}

// ContentRow is a premium_content row joined with its author and how
// many users subscribed to it.
type ContentRow struct {
	cmsModel.PremiumContentModel
	FirstName         *string `json:"first_name" gorm:"column:first_name"`
	LastName          *string `json:"last_name" gorm:"column:last_name"`
	SubscriptionCount int64   `json:"subscription_count" gorm:"column:subscription_count"`
}

// PackageRow is a subscription_packages row joined with its author and
// its live subscription count.
type PackageRow struct {
	cmsModel.SubscriptionPackageModel
	FirstName           *string `json:"first_name" gorm:"column:first_name"`
	LastName            *string `json:"last_name" gorm:"column:last_name"`
	ActiveSubscriptions int64   `json:"active_subscriptions" gorm:"column:active_subscriptions"`
}

type AnalyticsKPIs struct {
	TotalSchools        int64 `json:"total_schools"`
	TotalUsers          int64 `json:"total_users"`
	TotalContent        int64 `json:"total_content"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}

type AnalyticsRevenue struct {
	TotalRevenue      float64 `json:"total_revenue" gorm:"column:total_revenue"`
	TotalTransactions int64   `json:"total_transactions" gorm:"column:total_transactions"`
}

type ContentPerformanceRow struct {
	ContentType       string  `json:"content_type" gorm:"column:content_type"`
	SubscriptionCount int64   `json:"subscription_count" gorm:"column:subscription_count"`
	Revenue           float64 `json:"revenue" gorm:"column:revenue"`
}
