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

// CustomerForm 新增/编辑客户的表单载荷。
// Status 允许传 token 或当前语言的标签，入库前统一还原为 token。
type CustomerForm struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	IsCorporate bool   `json:"is_corporate"`
	Status      string `json:"status"`
	Remark      string `json:"remark"`
}

type CustomerController struct{ s *Srv }

func NewCustomerController(s *Srv) *CustomerController { return &CustomerController{s: s} }

// 搜索范围：姓名（忽略大小写）+ 手机号（原样子串）。状态不参与搜索。
func matchCustomer(c models.Customer, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) ||
		strings.Contains(c.Phone, q)
}

func customerSortKey(col string) func(models.Customer) listview.Key {
	switch col {
	case "id":
		return func(c models.Customer) listview.Key { return listview.KeyOf(c.ID) }
	case "name":
		return func(c models.Customer) listview.Key { return listview.KeyOf(c.Name) }
	case "phone":
		return func(c models.Customer) listview.Key { return listview.KeyOf(c.Phone) }
	case "is_corporate":
		return func(c models.Customer) listview.Key { return listview.KeyOf(c.IsCorporate) }
	case "status":
		return func(c models.Customer) listview.Key { return listview.KeyOf(c.Status) }
	case "remark":
		return func(c models.Customer) listview.Key { return listview.KeyOf(c.Remark) }
	default:
		return nil
	}
}

// ---- 核心逻辑（调用方持锁）----

func (s *Srv) customerFromForm(f CustomerForm, id int) models.Customer {
	return models.Customer{
		ID:          id,
		Name:        f.Name,
		Phone:       f.Phone,
		IsCorporate: f.IsCorporate,
		Status:      s.tr.ReverseStatus(f.Status),
		Remark:      f.Remark,
	}
}

func (s *Srv) validateCustomer(c models.Customer, selfIdx int) error {
	if c.Name == "" || c.Phone == "" {
		return invalid("name_phone_required")
	}
	if !isDigits(c.Phone) || len(c.Phone) < 6 {
		return invalid("phone_invalid")
	}
	for i, other := range s.customers.All() {
		if i != selfIdx && other.Phone == c.Phone {
			return invalid("phone_exists")
		}
	}
	return nil
}

func (s *Srv) createCustomer(f CustomerForm) (models.Customer, error) {
	c := s.customerFromForm(f, 0)
	if err := s.validateCustomer(c, -1); err != nil {
		return models.Customer{}, err
	}
	snap := s.customers.Snapshot()
	c.ID = s.customers.NextID()
	s.customers.Append(c)
	if err := s.saveCustomers(snap); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *Srv) updateCustomer(id int, f CustomerForm) (bool, error) {
	idx := s.customers.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	c := s.customerFromForm(f, id)
	if err := s.validateCustomer(c, idx); err != nil {
		return false, err
	}
	snap := s.customers.Snapshot()
	s.customers.ReplaceAt(idx, c)
	return true, s.saveCustomers(snap)
}

func (s *Srv) deleteCustomer(id int) (bool, error) {
	idx := s.customers.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	snap := s.customers.Snapshot()
	s.customers.RemoveAt(idx)
	return true, s.saveCustomers(snap)
}

// customerOrders 该客户名下的全部历史订单（按姓名冗余关联）。
func (s *Srv) customerOrders(name string) []models.Order {
	out := []models.Order{}
	for _, o := range s.orders.All() {
		if o.Customer == name {
			out = append(out, o)
		}
	}
	return out
}

// ---- HTTP ----

func (c *CustomerController) renderLocked(ctx *gin.Context) {
	s := c.s
	filtered := listview.Filter(s.customers.All(), s.customerView.Search, matchCustomer)
	pg := listview.Paginate(filtered, s.customerView.Page)
	s.customerView.Page = pg.Page
	ctx.JSON(http.StatusOK, gin.H{
		"items":       pg.Items,
		"page":        pg.Page,
		"total_pages": pg.TotalPages,
		"total":       pg.Total,
		"page_info":   fmt.Sprintf(s.tr.T("page_info"), pg.Page, pg.TotalPages, pg.Total),
	})
}

func (c *CustomerController) List(ctx *gin.Context) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.renderLocked(ctx)
}

func (c *CustomerController) Search(ctx *gin.Context) {
	var req struct {
		Q string `json:"q"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.customerView.SetSearch(req.Q)
	c.renderLocked(ctx)
}

func (c *CustomerController) Sort(ctx *gin.Context) {
	var req struct {
		Column string `json:"column"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rev := c.s.customerView.ToggleReverse()
	if key := customerSortKey(req.Column); key != nil {
		listview.SortSlice(c.s.customers.All(), key, rev)
	}
	c.renderLocked(ctx)
}

func (c *CustomerController) PageNav(ctx *gin.Context) {
	var req struct {
		Dir  string `json:"dir"`
		Page int    `json:"page"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	switch {
	case req.Page > 0:
		c.s.customerView.Page = req.Page
	case req.Dir == "prev":
		c.s.customerView.Prev()
	case req.Dir == "next":
		filtered := listview.Filter(c.s.customers.All(), c.s.customerView.Search, matchCustomer)
		c.s.customerView.Next(len(filtered))
	}
	c.renderLocked(ctx)
}

func (c *CustomerController) Create(ctx *gin.Context) {
	var form CustomerForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rec, err := c.s.createCustomer(form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "customer": rec})
}

func (c *CustomerController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	var form CustomerForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	ok, err := c.s.updateCustomer(id, form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *CustomerController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if ctx.Query("confirm") != "1" {
		idx := c.s.customers.IndexByID(id)
		if idx < 0 {
			ctx.JSON(http.StatusOK, gin.H{"ok": false})
			return
		}
		msg := fmt.Sprintf(c.s.tr.T("confirm_delete_customer"), c.s.customers.At(idx).Name)
		ctx.JSON(http.StatusOK, gin.H{"confirm": msg})
		return
	}
	ok, err := c.s.deleteCustomer(id)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

// History 查看该客户的历史订单。
func (c *CustomerController) History(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	idx := c.s.customers.IndexByID(id)
	if idx < 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	name := c.s.customers.At(idx).Name
	ctx.JSON(http.StatusOK, gin.H{"customer": name, "orders": c.s.customerOrders(name)})
}

func (c *CustomerController) ExportCSV(ctx *gin.Context) {
	s := c.s
	s.mu.Lock()
	defer s.mu.Unlock()
	tr := s.tr
	header := []string{
		tr.T("customer_id"), tr.T("name"), tr.T("phone"),
		tr.T("is_corporate"), tr.T("status"), tr.T("remark"),
	}
	filtered := listview.Filter(s.customers.All(), s.customerView.Search, matchCustomer)
	rows := make([][]string, 0, len(filtered))
	for _, rec := range filtered {
		rows = append(rows, []string{
			strconv.Itoa(rec.ID), rec.Name, rec.Phone,
			tr.YesNo(rec.IsCorporate), tr.T(rec.Status), rec.Remark,
		})
	}
	writeCSV(ctx, "customers.csv", header, rows)
}
