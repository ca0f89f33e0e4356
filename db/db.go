package db

import (
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/m1075397715/car-rental-management/models"
)

// Open 打开（必要时创建）SQLite 数据库文件并建表。
func Open(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// ConnectDB 启动入口：存储打不开就直接退出。
func ConnectDB(path string) *gorm.DB {
	conn, err := Open(path)
	if err != nil {
		logrus.Fatalf("Failed to open database %s: %v", path, err)
	}
	logrus.Infof("Database connected: %s", path)
	return conn
}

// Migrate 幂等建表。车牌、手机号的唯一索引由表结构兜底，
// 正常路径的查重在表单校验层完成。
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.Vehicle{},
		&models.Customer{},
		&models.Order{},
		&models.Fine{},
	)
}
