package models

const FineTable = "fines"

// Fine 罚款记录。与订单一样按车牌/姓名冗余引用。
type Fine struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Vehicle  string `gorm:"size:20" json:"vehicle"`
	Customer string `gorm:"size:100" json:"customer"`
	FineType string `gorm:"size:100" json:"fine_type"`
	Amount   string `gorm:"size:20" json:"amount"`
	FineDate string `gorm:"size:10" json:"fine_date"`
	Paid     bool   `json:"paid"` // 是否已缴纳
	Remark   string `gorm:"type:text" json:"remark"`
}

func (Fine) TableName() string { return FineTable }
