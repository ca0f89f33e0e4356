// Package i18n 提供界面文案的 token -> 文本翻译，以及状态枚举的反向查找。
// 核心逻辑只使用小写 token，展示文本全部经过这里。
package i18n

import (
	"fmt"
	"sync"
)

var lang = map[string]map[string]string{
	"zh": {
		// 通用
		"ok":             "确定",
		"cancel":         "取消",
		"tip":            "提示",
		"yes":            "是",
		"no":             "否",
		"search":         "搜索",
		"export_csv":     "导出CSV",
		"export_success": "已导出！",
		"export_failed":  "导出失败",
		"prev_page":      "上一页",
		"next_page":      "下一页",
		"page_info":      "第 %d / %d 页（共 %d 条）",

		// 菜单/主界面
		"vehicle":        "车辆管理",
		"customer":       "客户管理",
		"order":          "订单管理",
		"fine":           "罚款记录",
		"menu":           "菜单",
		"lang":           "中/English",
		"backup":         "一键备份",
		"switch_success": "语言切换成功！",
		"backup_success": "备份成功！",
		"backup_failed":  "备份失败！",
		"title":          "车辆租赁管理系统",
		"uae_time":       "阿联酋时间",

		// 车辆管理
		"vehicle_manage":     "车辆管理页面",
		"add_vehicle":        "添加车辆",
		"delete_vehicle":     "删除车辆",
		"vehicle_id":         "车辆编号",
		"license_plate":      "车牌号",
		"model":              "型号",
		"year":               "年份",
		"insurance_expiry":   "保险到期日",
		"mileage":            "里程数",
		"monthly_price":      "月租价",
		"status":             "状态",
		"deposit":            "押金",
		"remark":             "备注",
		"plate_required":     "车牌号、型号、年份不能为空！",
		"year_number":        "年份必须为数字！",
		"plate_exists":       "车牌号已存在！",
		"confirm_delete":     "确定要删除车辆 %s 吗？",
		"insurance_expired":  "保险到期车辆：",
		"select_vehicle":     "请先选中要删除的车辆！",

		// 客户管理
		"customer_manage":         "客户管理页面",
		"add_customer":            "添加客户",
		"delete_customer":         "删除客户",
		"name":                    "姓名",
		"phone":                   "手机号",
		"is_corporate":            "企业客户",
		"normal":                  "普通",
		"vip":                     "VIP",
		"blacklist":               "黑名单",
		"order_history":           "历史订单",
		"name_phone_required":     "姓名和手机号不能为空！",
		"phone_invalid":           "手机号格式不正确！",
		"phone_exists":            "手机号已存在！",
		"confirm_delete_customer": "确定要删除客户 %s 吗？",
		"select_customer":         "请先选中要删除的客户！",

		// 订单管理
		"order_manage":               "订单管理页面",
		"add_order":                  "添加订单",
		"delete_order":               "删除订单",
		"renew_order":                "续租订单",
		"order_id":                   "订单编号",
		"customer_name":              "客户姓名",
		"vehicle_plate":              "车牌号",
		"start_date":                 "起始日期",
		"end_date":                   "结束日期",
		"order_status":               "订单状态",
		"total_amount":               "总金额",
		"ongoing":                    "进行中",
		"completed":                  "已完成",
		"overdue":                    "逾期",
		"cancelled":                  "已取消",
		"order_expired":              "租赁到期订单：",
		"add_customer_vehicle_first": "请先添加客户和车辆！",
		"customer_vehicle_required":  "客户和车辆不能为空！",
		"date_invalid":               "起止日期不正确！",
		"amount_invalid":             "金额格式不正确！",
		"select_order":               "请先选中要操作的订单！",
		"confirm_delete_order":       "确定要删除订单 %d 吗？",
		"new_end_date":               "新结束日期",
		"renew_date_error":           "新结束日期必须大于原结束日期！",

		// 罚款记录
		"fine_manage":         "罚款记录页面",
		"add_fine":            "添加罚款",
		"delete_fine":         "删除罚款",
		"fine_id":             "编号",
		"fine_type":           "罚款类型",
		"fine_amount":         "罚款金额",
		"fine_date":           "罚款日期",
		"fine_paid":           "已缴纳",
		"fine_required":       "车牌号、客户、罚款类型不能为空！",
		"select_fine":         "请先选中要删除的罚款记录！",
		"confirm_delete_fine": "确定要删除罚款记录 %d 吗？",
	},
	"en": {
		"ok":             "OK",
		"cancel":         "Cancel",
		"tip":            "Tip",
		"yes":            "Yes",
		"no":             "No",
		"search":         "Search",
		"export_csv":     "Export CSV",
		"export_success": "Exported!",
		"export_failed":  "Export failed",
		"prev_page":      "Prev",
		"next_page":      "Next",
		"page_info":      "Page %d / %d (Total %d)",

		"vehicle":        "Vehicles",
		"customer":       "Customers",
		"order":          "Orders",
		"fine":           "Fines",
		"menu":           "Menu",
		"lang":           "中/English",
		"backup":         "Backup",
		"switch_success": "Language switched!",
		"backup_success": "Backup done!",
		"backup_failed":  "Backup failed!",
		"title":          "Car Rental Management System",
		"uae_time":       "UAE Time",

		"vehicle_manage":    "Vehicle Management",
		"add_vehicle":       "Add Vehicle",
		"delete_vehicle":    "Delete Vehicle",
		"vehicle_id":        "Vehicle ID",
		"license_plate":     "Plate",
		"model":             "Model",
		"year":              "Year",
		"insurance_expiry":  "Insurance Expiry",
		"mileage":           "Mileage",
		"monthly_price":     "Monthly Price",
		"status":            "Status",
		"deposit":           "Deposit",
		"remark":            "Remark",
		"plate_required":    "Plate, model and year are required!",
		"year_number":       "Year must be a number!",
		"plate_exists":      "Plate already exists!",
		"confirm_delete":    "Delete vehicle %s?",
		"insurance_expired": "Insurance expired:",
		"select_vehicle":    "Select a vehicle first!",

		"customer_manage":         "Customer Management",
		"add_customer":            "Add Customer",
		"delete_customer":         "Delete Customer",
		"name":                    "Name",
		"phone":                   "Phone",
		"is_corporate":            "Corporate",
		"normal":                  "Normal",
		"vip":                     "VIP",
		"blacklist":               "Blacklist",
		"order_history":           "Order History",
		"name_phone_required":     "Name and phone are required!",
		"phone_invalid":           "Invalid phone number!",
		"phone_exists":            "Phone already exists!",
		"confirm_delete_customer": "Delete customer %s?",
		"select_customer":         "Select a customer first!",

		"order_manage":               "Order Management",
		"add_order":                  "Add Order",
		"delete_order":               "Delete Order",
		"renew_order":                "Renew Order",
		"order_id":                   "Order ID",
		"customer_name":              "Customer",
		"vehicle_plate":              "Plate",
		"start_date":                 "Start Date",
		"end_date":                   "End Date",
		"order_status":               "Status",
		"total_amount":               "Amount",
		"ongoing":                    "Ongoing",
		"completed":                  "Completed",
		"overdue":                    "Overdue",
		"cancelled":                  "Cancelled",
		"order_expired":              "Expired orders:",
		"add_customer_vehicle_first": "Add customers and vehicles first!",
		"customer_vehicle_required":  "Customer and vehicle are required!",
		"date_invalid":               "Invalid date range!",
		"amount_invalid":             "Invalid amount!",
		"select_order":               "Select an order first!",
		"confirm_delete_order":       "Delete order %d?",
		"new_end_date":               "New End Date",
		"renew_date_error":           "New end date must be later than the current one!",

		"fine_manage":         "Fine Records",
		"add_fine":            "Add Fine",
		"delete_fine":         "Delete Fine",
		"fine_id":             "Fine ID",
		"fine_type":           "Fine Type",
		"fine_amount":         "Fine Amount",
		"fine_date":           "Fine Date",
		"fine_paid":           "Paid",
		"fine_required":       "Plate, customer and fine type are required!",
		"select_fine":         "Select a fine record first!",
		"confirm_delete_fine": "Delete fine record %d?",
	},
}

// 状态枚举 token。反向查找只在这个集合上进行，
// 同一语言内标签必须与 token 一一对应。
var statusTokens = []string{
	"normal", "vip", "blacklist",
	"ongoing", "completed", "overdue", "cancelled",
}

func init() {
	// 标签重复会让反向查找二义，启动即失败
	for code, table := range lang {
		seen := map[string]string{}
		for _, tok := range statusTokens {
			label := table[tok]
			if prev, ok := seen[label]; ok {
				panic(fmt.Sprintf("i18n: %s label %q maps to both %s and %s", code, label, prev, tok))
			}
			seen[label] = tok
		}
	}
}

// Translator 持有当前语言，供所有页面共用。
type Translator struct {
	mu   sync.RWMutex
	lang string
}

func New(code string) *Translator {
	if _, ok := lang[code]; !ok {
		code = "zh"
	}
	return &Translator{lang: code}
}

func (t *Translator) Lang() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLang 切换语言，未知语言返回 false。
func (t *Translator) SetLang(code string) bool {
	if _, ok := lang[code]; !ok {
		return false
	}
	t.mu.Lock()
	t.lang = code
	t.mu.Unlock()
	return true
}

// T 取当前语言的文案，找不到原样返回 key。
func (t *Translator) T(key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := lang[t.lang][key]; ok {
		return v
	}
	return key
}

// ReverseStatus 把本地化状态标签还原为 token。
// 传入的已是 token 或未知标签时原样返回。
func (t *Translator) ReverseStatus(label string) string {
	for _, tok := range statusTokens {
		if t.T(tok) == label {
			return tok
		}
	}
	return label
}

// YesNo 布尔值的本地化展示。
func (t *Translator) YesNo(b bool) string {
	if b {
		return t.T("yes")
	}
	return t.T("no")
}
