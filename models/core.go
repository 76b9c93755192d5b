package models

import (
	"log"
	"os"
	"path/filepath"

	"github.com/GrainArc/RoofLine/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// InitDB 初始化主数据库，按配置选择 postgres 或本地 sqlite
func InitDB() {
	var err error
	if config.Dbtype == "postgres" {
		DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	} else {
		StoragePath := config.Storage
		if StoragePath == "" {
			StoragePath = "."
		}
		if err := os.MkdirAll(StoragePath, os.ModePerm); err != nil {
			log.Fatalf("创建存储目录失败: %v", err)
		}
		dbPath := filepath.Join(StoragePath, "roofline.db")
		log.Printf("数据库路径: %s", dbPath)
		DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("连接数据库失败: %v", err)
		}
	}

	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	if err := migrateAllTables(DB); err != nil {
		log.Printf("Failed to migrate tables: %v", err)
	}
}

// migrateAllTables 批量迁移所有表
func migrateAllTables(db *gorm.DB) error {
	models := []interface{}{
		&RoofSegment{},
		&FacetJob{},
		&FacetResult{},
	}

	return db.AutoMigrate(models...)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
