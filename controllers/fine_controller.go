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

// FineForm 新增/编辑罚款记录的表单载荷。
type FineForm struct {
	Vehicle  string `json:"vehicle"`
	Customer string `json:"customer"`
	FineType string `json:"fine_type"`
	Amount   string `json:"amount"`
	FineDate string `json:"fine_date"`
	Paid     bool   `json:"paid"`
	Remark   string `json:"remark"`
}

type FineController struct{ s *Srv }

func NewFineController(s *Srv) *FineController { return &FineController{s: s} }

func matchFine(f models.Fine, q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(f.Vehicle), lq) ||
		strings.Contains(strings.ToLower(f.Customer), lq) ||
		strings.Contains(strings.ToLower(f.FineType), lq)
}

func fineSortKey(col string) func(models.Fine) listview.Key {
	switch col {
	case "id":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.ID) }
	case "vehicle":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.Vehicle) }
	case "customer":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.Customer) }
	case "fine_type":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.FineType) }
	case "amount":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.Amount) }
	case "fine_date":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.FineDate) }
	case "paid":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.Paid) }
	case "remark":
		return func(f models.Fine) listview.Key { return listview.KeyOf(f.Remark) }
	default:
		return nil
	}
}

// ---- 核心逻辑（调用方持锁）----

func fineFromForm(f FineForm, id int) models.Fine {
	return models.Fine{
		ID:       id,
		Vehicle:  strings.ToUpper(strings.TrimSpace(f.Vehicle)),
		Customer: f.Customer,
		FineType: f.FineType,
		Amount:   f.Amount,
		FineDate: f.FineDate,
		Paid:     f.Paid,
		Remark:   f.Remark,
	}
}

func validateFine(f models.Fine) error {
	if f.Vehicle == "" || f.Customer == "" || f.FineType == "" {
		return invalid("fine_required")
	}
	if !isAmount(f.Amount) {
		return invalid("amount_invalid")
	}
	return nil
}

func (s *Srv) createFine(f FineForm) (models.Fine, error) {
	if s.customers.Len() == 0 || s.vehicles.Len() == 0 {
		return models.Fine{}, invalid("add_customer_vehicle_first")
	}
	rec := fineFromForm(f, 0)
	if err := validateFine(rec); err != nil {
		return models.Fine{}, err
	}
	snap := s.fines.Snapshot()
	rec.ID = s.fines.NextID()
	s.fines.Append(rec)
	if err := s.saveFines(snap); err != nil {
		return models.Fine{}, err
	}
	return rec, nil
}

func (s *Srv) updateFine(id int, f FineForm) (bool, error) {
	idx := s.fines.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	rec := fineFromForm(f, id)
	if err := validateFine(rec); err != nil {
		return false, err
	}
	snap := s.fines.Snapshot()
	s.fines.ReplaceAt(idx, rec)
	return true, s.saveFines(snap)
}

func (s *Srv) deleteFine(id int) (bool, error) {
	idx := s.fines.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	snap := s.fines.Snapshot()
	s.fines.RemoveAt(idx)
	return true, s.saveFines(snap)
}

// ---- HTTP ----

func (c *FineController) renderLocked(ctx *gin.Context) {
	s := c.s
	filtered := listview.Filter(s.fines.All(), s.fineView.Search, matchFine)
	pg := listview.Paginate(filtered, s.fineView.Page)
	s.fineView.Page = pg.Page
	ctx.JSON(http.StatusOK, gin.H{
		"items":       pg.Items,
		"page":        pg.Page,
		"total_pages": pg.TotalPages,
		"total":       pg.Total,
		"page_info":   fmt.Sprintf(s.tr.T("page_info"), pg.Page, pg.TotalPages, pg.Total),
	})
}

func (c *FineController) List(ctx *gin.Context) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.renderLocked(ctx)
}

func (c *FineController) Search(ctx *gin.Context) {
	var req struct {
		Q string `json:"q"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.fineView.SetSearch(req.Q)
	c.renderLocked(ctx)
}

func (c *FineController) Sort(ctx *gin.Context) {
	var req struct {
		Column string `json:"column"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rev := c.s.fineView.ToggleReverse()
	if key := fineSortKey(req.Column); key != nil {
		listview.SortSlice(c.s.fines.All(), key, rev)
	}
	c.renderLocked(ctx)
}

func (c *FineController) PageNav(ctx *gin.Context) {
	var req struct {
		Dir  string `json:"dir"`
		Page int    `json:"page"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	switch {
	case req.Page > 0:
		c.s.fineView.Page = req.Page
	case req.Dir == "prev":
		c.s.fineView.Prev()
	case req.Dir == "next":
		filtered := listview.Filter(c.s.fines.All(), c.s.fineView.Search, matchFine)
		c.s.fineView.Next(len(filtered))
	}
	c.renderLocked(ctx)
}

func (c *FineController) Create(ctx *gin.Context) {
	var form FineForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rec, err := c.s.createFine(form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "fine": rec})
}

func (c *FineController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	var form FineForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	ok, err := c.s.updateFine(id, form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *FineController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if ctx.Query("confirm") != "1" {
		idx := c.s.fines.IndexByID(id)
		if idx < 0 {
			ctx.JSON(http.StatusOK, gin.H{"ok": false})
			return
		}
		msg := fmt.Sprintf(c.s.tr.T("confirm_delete_fine"), id)
		ctx.JSON(http.StatusOK, gin.H{"confirm": msg})
		return
	}
	ok, err := c.s.deleteFine(id)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *FineController) ExportCSV(ctx *gin.Context) {
	s := c.s
	s.mu.Lock()
	defer s.mu.Unlock()
	tr := s.tr
	header := []string{
		tr.T("fine_id"), tr.T("vehicle_plate"), tr.T("customer_name"), tr.T("fine_type"),
		tr.T("fine_amount"), tr.T("fine_date"), tr.T("fine_paid"), tr.T("remark"),
	}
	filtered := listview.Filter(s.fines.All(), s.fineView.Search, matchFine)
	rows := make([][]string, 0, len(filtered))
	for _, f := range filtered {
		rows = append(rows, []string{
			strconv.Itoa(f.ID), f.Vehicle, f.Customer, f.FineType,
			f.Amount, f.FineDate, tr.YesNo(f.Paid), f.Remark,
		})
	}
	writeCSV(ctx, "fines.csv", header, rows)
}
