package database

import (
	"course_mgmt_backend/internal/config"
	"course_mgmt_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 建立 MySQL 连接。autoMigrate 控制是否同步表结构：
// debug 模式默认开启，release 模式需要通过 -migrate 显式触发
func InitDB(cfg *config.DatabaseConfig, autoMigrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError: 唯一键冲突统一转成 gorm.ErrDuplicatedKey，
	// 选课去重依赖联合主键约束而不是先查后插
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.UserCourse{},
		&model.LessonProgress{},
	)
}
