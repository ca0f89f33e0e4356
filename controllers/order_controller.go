package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/m1075397715/car-rental-management/listview"
	"github.com/m1075397715/car-rental-management/models"
)

// OrderForm 新增/编辑订单的表单载荷。客户与车辆按姓名/车牌引用。
type OrderForm struct {
	Customer  string `json:"customer"`
	Vehicle   string `json:"vehicle"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
	Remark    string `json:"remark"`
}

type OrderController struct{ s *Srv }

func NewOrderController(s *Srv) *OrderController { return &OrderController{s: s} }

func matchOrder(o models.Order, q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(o.Customer), lq) ||
		strings.Contains(strings.ToLower(o.Vehicle), lq) ||
		strings.Contains(strings.ToLower(o.Status), lq)
}

func orderSortKey(col string) func(models.Order) listview.Key {
	switch col {
	case "id":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.ID) }
	case "customer":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.Customer) }
	case "vehicle":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.Vehicle) }
	case "start_date":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.StartDate) }
	case "end_date":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.EndDate) }
	case "status":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.Status) }
	case "amount":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.Amount) }
	case "remark":
		return func(o models.Order) listview.Key { return listview.KeyOf(o.Remark) }
	default:
		return nil
	}
}

// ---- 核心逻辑（调用方持锁）----

func (s *Srv) orderFromForm(f OrderForm, id int) models.Order {
	return models.Order{
		ID:        id,
		Customer:  f.Customer,
		Vehicle:   f.Vehicle,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    s.tr.ReverseStatus(f.Status),
		Amount:    f.Amount,
		Remark:    f.Remark,
	}
}

func validateOrder(o models.Order) error {
	if o.Customer == "" || o.Vehicle == "" {
		return invalid("customer_vehicle_required")
	}
	// 定宽 ISO 日期，字典序即时间序
	if o.StartDate > o.EndDate {
		return invalid("date_invalid")
	}
	if _, err := strconv.ParseFloat(o.Amount, 64); err != nil {
		return invalid("amount_invalid")
	}
	return nil
}

func (s *Srv) createOrder(f OrderForm) (models.Order, error) {
	// 没有客户或车辆时无法建单
	if s.customers.Len() == 0 || s.vehicles.Len() == 0 {
		return models.Order{}, invalid("add_customer_vehicle_first")
	}
	o := s.orderFromForm(f, 0)
	if err := validateOrder(o); err != nil {
		return models.Order{}, err
	}
	snap := s.orders.Snapshot()
	o.ID = s.orders.NextID()
	s.orders.Append(o)
	if err := s.saveOrders(snap); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *Srv) updateOrder(id int, f OrderForm) (bool, error) {
	idx := s.orders.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	o := s.orderFromForm(f, id)
	if err := validateOrder(o); err != nil {
		return false, err
	}
	snap := s.orders.Snapshot()
	s.orders.ReplaceAt(idx, o)
	return true, s.saveOrders(snap)
}

func (s *Srv) deleteOrder(id int) (bool, error) {
	idx := s.orders.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	snap := s.orders.Snapshot()
	s.orders.RemoveAt(idx)
	return true, s.saveOrders(snap)
}

// renewOrder 续租：新结束日期必须晚于当前结束日期，状态强制回到进行中。
func (s *Srv) renewOrder(id int, newEnd string) (bool, error) {
	idx := s.orders.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	o := s.orders.At(idx)
	if newEnd <= o.EndDate {
		return false, invalid("renew_date_error")
	}
	snap := s.orders.Snapshot()
	o.EndDate = newEnd
	o.Status = models.OrderOngoing
	s.orders.ReplaceAt(idx, o)
	return true, s.saveOrders(snap)
}

// ---- HTTP ----

func (c *OrderController) renderLocked(ctx *gin.Context) {
	s := c.s
	filtered := listview.Filter(s.orders.All(), s.orderView.Search, matchOrder)
	pg := listview.Paginate(filtered, s.orderView.Page)
	s.orderView.Page = pg.Page
	d := today()
	ctx.JSON(http.StatusOK, gin.H{
		"items":       pg.Items,
		"page":        pg.Page,
		"total_pages": pg.TotalPages,
		"total":       pg.Total,
		"page_info":   fmt.Sprintf(s.tr.T("page_info"), pg.Page, pg.TotalPages, pg.Total),
		"expired":     s.expiredOrders(d),
		"due_soon":    s.dueSoonOrders(d),
	})
}

func (c *OrderController) List(ctx *gin.Context) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.renderLocked(ctx)
}

func (c *OrderController) Search(ctx *gin.Context) {
	var req struct {
		Q string `json:"q"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.orderView.SetSearch(req.Q)
	c.renderLocked(ctx)
}

func (c *OrderController) Sort(ctx *gin.Context) {
	var req struct {
		Column string `json:"column"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rev := c.s.orderView.ToggleReverse()
	if key := orderSortKey(req.Column); key != nil {
		listview.SortSlice(c.s.orders.All(), key, rev)
	}
	c.renderLocked(ctx)
}

func (c *OrderController) PageNav(ctx *gin.Context) {
	var req struct {
		Dir  string `json:"dir"`
		Page int    `json:"page"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	switch {
	case req.Page > 0:
		c.s.orderView.Page = req.Page
	case req.Dir == "prev":
		c.s.orderView.Prev()
	case req.Dir == "next":
		filtered := listview.Filter(c.s.orders.All(), c.s.orderView.Search, matchOrder)
		c.s.orderView.Next(len(filtered))
	}
	c.renderLocked(ctx)
}

func (c *OrderController) Create(ctx *gin.Context) {
	var form OrderForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	o, err := c.s.createOrder(form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "order": o})
}

func (c *OrderController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	var form OrderForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	ok, err := c.s.updateOrder(id, form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *OrderController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if ctx.Query("confirm") != "1" {
		idx := c.s.orders.IndexByID(id)
		if idx < 0 {
			ctx.JSON(http.StatusOK, gin.H{"ok": false})
			return
		}
		msg := fmt.Sprintf(c.s.tr.T("confirm_delete_order"), id)
		ctx.JSON(http.StatusOK, gin.H{"confirm": msg})
		return
	}
	ok, err := c.s.deleteOrder(id)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

// Renew 续租。
func (c *OrderController) Renew(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	var req struct {
		EndDate string `json:"end_date"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	ok, err := c.s.renewOrder(id, req.EndDate)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *OrderController) ExportCSV(ctx *gin.Context) {
	s := c.s
	s.mu.Lock()
	defer s.mu.Unlock()
	tr := s.tr
	header := []string{
		tr.T("order_id"), tr.T("customer_name"), tr.T("vehicle_plate"), tr.T("start_date"),
		tr.T("end_date"), tr.T("order_status"), tr.T("total_amount"), tr.T("remark"),
	}
	filtered := listview.Filter(s.orders.All(), s.orderView.Search, matchOrder)
	rows := make([][]string, 0, len(filtered))
	for _, o := range filtered {
		rows = append(rows, []string{
			strconv.Itoa(o.ID), o.Customer, o.Vehicle, o.StartDate,
			o.EndDate, tr.T(o.Status), o.Amount, o.Remark,
		})
	}
	writeCSV(ctx, "orders.csv", header, rows)
}
