package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/m1075397715/car-rental-management/models"
)

// 旧版桌面程序把数据存成四个 JSON 文件，表为空且文件存在时导入一次。
var legacyFiles = map[string]string{
	models.VehicleTable:  "vehicle_data.json",
	models.CustomerTable: "customer_data.json",
	models.OrderTable:    "order_data.json",
	models.FineTable:     "fine_data.json",
}

// ImportLegacyIfEmpty 在首次加载前运行。文件损坏直接报错终止启动，
// 导入只发生在离线初始化场景，由操作者自行处理。
func (s *Store) ImportLegacyIfEmpty(dataDir string) error {
	if err := importLegacy(s.DB, dataDir, models.VehicleTable, func(raw []byte) (int, error) {
		var records []models.Vehicle
		if err := json.Unmarshal(raw, &records); err != nil {
			return 0, err
		}
		for i := range records {
			records[i].ID = 0 // 让主键自增分配
			if err := s.DB.Create(&records[i]).Error; err != nil {
				return 0, err
			}
		}
		return len(records), nil
	}); err != nil {
		return err
	}
	if err := importLegacy(s.DB, dataDir, models.CustomerTable, func(raw []byte) (int, error) {
		var records []models.Customer
		if err := json.Unmarshal(raw, &records); err != nil {
			return 0, err
		}
		for i := range records {
			records[i].ID = 0
			if err := s.DB.Create(&records[i]).Error; err != nil {
				return 0, err
			}
		}
		return len(records), nil
	}); err != nil {
		return err
	}
	if err := importLegacy(s.DB, dataDir, models.OrderTable, func(raw []byte) (int, error) {
		var records []models.Order
		if err := json.Unmarshal(raw, &records); err != nil {
			return 0, err
		}
		for i := range records {
			records[i].ID = 0
			if err := s.DB.Create(&records[i]).Error; err != nil {
				return 0, err
			}
		}
		return len(records), nil
	}); err != nil {
		return err
	}
	return importLegacy(s.DB, dataDir, models.FineTable, func(raw []byte) (int, error) {
		var records []models.Fine
		if err := json.Unmarshal(raw, &records); err != nil {
			return 0, err
		}
		for i := range records {
			records[i].ID = 0
			if err := s.DB.Create(&records[i]).Error; err != nil {
				return 0, err
			}
		}
		return len(records), nil
	})
}

// MustImportLegacy 启动入口：导入失败直接退出。
func (s *Store) MustImportLegacy(dataDir string) {
	if err := s.ImportLegacyIfEmpty(dataDir); err != nil {
		logrus.Fatalf("legacy import: %v", err)
	}
}

func importLegacy(conn *gorm.DB, dataDir, table string, insert func([]byte) (int, error)) error {
	var count int64
	if err := conn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}
	path := filepath.Join(dataDir, legacyFiles[table])
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	n, err := insert(raw)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	logrus.Infof("imported %d legacy records into %s", n, table)
	return nil
}
