package model

type Dashboard struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	DashboardName string `gorm:"size:255;not null" json:"dashboard_name"`
}

type DashboardNameInput struct {
	DashboardName string `json:"dashboard_name" validate:"required"`
}
