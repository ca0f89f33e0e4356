package models

const OrderTable = "orders"

// 订单状态（持久化为小写 token）
const (
	OrderOngoing   = "ongoing"
	OrderCompleted = "completed"
	OrderOverdue   = "overdue"
	OrderCancelled = "cancelled"
)

var OrderStatuses = []string{OrderOngoing, OrderCompleted, OrderOverdue, OrderCancelled}

// Order 租赁订单。客户/车辆按姓名与车牌冗余引用，不做外键约束，
// 删除客户或车辆不会级联（与历史数据保持一致）。
type Order struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Customer  string `gorm:"size:100" json:"customer"` // 客户姓名
	Vehicle   string `gorm:"size:20" json:"vehicle"`   // 车牌号
	StartDate string `gorm:"size:10" json:"start_date"`
	EndDate   string `gorm:"size:10" json:"end_date"`
	Status    string `gorm:"size:20" json:"status"`
	Amount    string `gorm:"size:20" json:"amount"`
	Remark    string `gorm:"type:text" json:"remark"`
}

func (Order) TableName() string { return OrderTable }
