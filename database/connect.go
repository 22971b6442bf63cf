package database

import (
	"fmt"
	"log"
	"time"

	"presence_board/config"
	"presence_board/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the pooled connection, blocking until the database is
// reachable. The container setup starts the database alongside the server,
// so boot waits up to 30 attempts spaced 2 seconds apart.
func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.ConfigDefault("DB_USER", "user"),
		config.ConfigDefault("DB_PASSWORD", "password"),
		config.ConfigDefault("DB_HOST", "database"),
		config.ConfigDefault("DB_PORT", "3306"),
		config.ConfigDefault("DB_NAME", "database-dev"),
	)

	var err error
	retries := 30
	for retries > 0 {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		retries--
		log.Printf("waiting for database... (%d retries left)", retries)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	log.Println("database connected")

	Migrate(DB)
	SeedData(DB)
}

func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&model.Dashboard{},
		&model.DashboardSettings{},
		&model.User{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

// Ping reports whether the pooled connection is alive. Used by /health.
func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not ready")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
