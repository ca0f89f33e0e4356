package db

import (
	"gorm.io/gorm"

	"github.com/m1075397715/car-rental-management/models"
)

// Store 持久层。唯一的写路径是整表替换：先删后插，
// 包在一个事务里，中途崩溃不会留下半空的表。
type Store struct{ DB *gorm.DB }

func NewStore(conn *gorm.DB) *Store { return &Store{DB: conn} }

// ---- 读：按主键序全量加载 ----

func (s *Store) LoadVehicles() ([]models.Vehicle, error) {
	var out []models.Vehicle
	err := s.DB.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) LoadCustomers() ([]models.Customer, error) {
	var out []models.Customer
	err := s.DB.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) LoadOrders() ([]models.Order, error) {
	var out []models.Order
	err := s.DB.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) LoadFines() ([]models.Fine, error) {
	var out []models.Fine
	err := s.DB.Order("id").Find(&out).Error
	return out, err
}

// ---- 写：删全表再按镜像顺序重插，id 原样保留 ----

func replaceAll[T any](conn *gorm.DB, table string, records []T) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) ReplaceVehicles(records []models.Vehicle) error {
	return replaceAll(s.DB, models.VehicleTable, records)
}

func (s *Store) ReplaceCustomers(records []models.Customer) error {
	return replaceAll(s.DB, models.CustomerTable, records)
}

func (s *Store) ReplaceOrders(records []models.Order) error {
	return replaceAll(s.DB, models.OrderTable, records)
}

func (s *Store) ReplaceFines(records []models.Fine) error {
	return replaceAll(s.DB, models.FineTable, records)
}
