package db

import (
	"log"
	"os"
	"teacup/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=teacup port=5432 sslmode=disable TimeZone=UTC"
	}

	if err := Connect(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
}

// Connect 建立连接并完成迁移。TranslateError 让唯一约束/检查约束冲突
// 以 gorm 的标准错误返回，apperrors.FromDB 依赖这一点
func Connect(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	log.Println("Database connection established")

	// Auto Migrate
	// 唯一索引和 follower<>followed 的 check 约束都在模型 tag 里声明，
	// 存储层约束是并发重复写入的最终防线
	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	log.Println("Database migration completed")
	return nil
}
