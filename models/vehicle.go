package models

const VehicleTable = "vehicles"

// Vehicle 车辆档案。字段值按原始录入保存为字符串，日期为 yyyy-MM-dd。
type Vehicle struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Plate        string `gorm:"size:20;uniqueIndex;not null" json:"plate"` // 车牌号，统一大写
	Model        string `gorm:"size:100" json:"model"`
	Year         string `gorm:"size:10" json:"year"`
	Insurance    string `gorm:"size:10" json:"insurance"` // 保险到期日
	Mileage      string `gorm:"size:20" json:"mileage"`
	MonthlyPrice string `gorm:"size:20" json:"monthly_price"`
	Deposit      string `gorm:"size:20" json:"deposit"`
	Remark       string `gorm:"type:text" json:"remark"`
}

func (Vehicle) TableName() string { return VehicleTable }
