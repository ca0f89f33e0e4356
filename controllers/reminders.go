package controllers

import (
	"time"

	"github.com/m1075397715/car-rental-management/models"
)

const dateLayout = "2006-01-02"

func today() string { return time.Now().Format(dateLayout) }

// expiredInsurance 保险到期的车牌列表。
// 日期是定宽 ISO 格式，直接按字符串比较。
func (s *Srv) expiredInsurance(today string) []string {
	plates := []string{}
	for _, v := range s.vehicles.All() {
		if v.Insurance != "" && v.Insurance < today {
			plates = append(plates, v.Plate)
		}
	}
	return plates
}

func orderActive(status string) bool {
	return status == models.OrderOngoing || status == models.OrderOverdue
}

// expiredOrders 结束日期已过且仍处于进行中/逾期的订单编号。
func (s *Srv) expiredOrders(today string) []int {
	ids := []int{}
	for _, o := range s.orders.All() {
		if o.EndDate != "" && o.EndDate < today && orderActive(o.Status) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// dueSoonOrders 三天内到期的订单编号（含今天）。
func (s *Srv) dueSoonOrders(today string) []int {
	base, err := time.Parse(dateLayout, today)
	if err != nil {
		return nil
	}
	ids := []int{}
	for _, o := range s.orders.All() {
		if !orderActive(o.Status) {
			continue
		}
		end, err := time.Parse(dateLayout, o.EndDate)
		if err != nil {
			continue
		}
		days := int(end.Sub(base).Hours() / 24)
		if days >= 0 && days <= 3 {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
