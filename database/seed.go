package database

import (
	"log"

	"presence_board/model"

	"gorm.io/gorm"
)

// SeedData makes sure a fresh deployment has one selectable board.
func SeedData(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Dashboard{}).Count(&count).Error; err != nil {
		log.Println("failed to count dashboards:", err)
		return
	}
	if count > 0 {
		return
	}

	dashboard := model.Dashboard{DashboardName: "Main Office"}
	if err := db.Where(model.Dashboard{DashboardName: dashboard.DashboardName}).FirstOrCreate(&dashboard).Error; err != nil {
		log.Println("failed to seed dashboard:", err)
	}
}
