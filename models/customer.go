package models

const CustomerTable = "customers"

// 客户状态（持久化为小写 token，展示层再翻译）
const (
	CustomerNormal    = "normal"
	CustomerVIP       = "vip"
	CustomerBlacklist = "blacklist"
)

var CustomerStatuses = []string{CustomerNormal, CustomerVIP, CustomerBlacklist}

// Customer 客户档案。手机号唯一。
type Customer struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Phone       string `gorm:"size:30;uniqueIndex" json:"phone"`
	IsCorporate bool   `json:"is_corporate"` // 企业客户
	Status      string `gorm:"size:20" json:"status"`
	Remark      string `gorm:"type:text" json:"remark"`
}

func (Customer) TableName() string { return CustomerTable }
