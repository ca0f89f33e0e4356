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

// VehicleForm 新增/编辑车辆的表单载荷。
type VehicleForm struct {
	Plate        string `json:"plate"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Insurance    string `json:"insurance"`
	Mileage      string `json:"mileage"`
	MonthlyPrice string `json:"monthly_price"`
	Deposit      string `json:"deposit"`
	Remark       string `json:"remark"`
}

type VehicleController struct{ s *Srv }

func NewVehicleController(s *Srv) *VehicleController { return &VehicleController{s: s} }

func matchVehicle(v models.Vehicle, q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(v.Plate), lq) ||
		strings.Contains(strings.ToLower(v.Model), lq)
}

func vehicleSortKey(col string) func(models.Vehicle) listview.Key {
	switch col {
	case "id":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.ID) }
	case "plate":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.Plate) }
	case "model":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.Model) }
	case "year":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.Year) }
	case "insurance":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.Insurance) }
	case "mileage":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.Mileage) }
	case "monthly_price":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.MonthlyPrice) }
	case "deposit":
		return func(v models.Vehicle) listview.Key { return listview.KeyOf(v.Deposit) }
	default:
		return nil
	}
}

// ---- 核心逻辑（调用方持锁）----

func vehicleFromForm(f VehicleForm, id int) models.Vehicle {
	return models.Vehicle{
		ID:           id,
		Plate:        strings.ToUpper(strings.TrimSpace(f.Plate)), // 车牌统一大写
		Model:        f.Model,
		Year:         f.Year,
		Insurance:    f.Insurance,
		Mileage:      f.Mileage,
		MonthlyPrice: f.MonthlyPrice,
		Deposit:      f.Deposit,
		Remark:       f.Remark,
	}
}

// validateVehicle 查重时跳过 selfIdx（编辑不改车牌要能通过）。
func (s *Srv) validateVehicle(v models.Vehicle, selfIdx int) error {
	if v.Plate == "" || v.Model == "" || v.Year == "" {
		return invalid("plate_required")
	}
	if !isDigits(v.Year) {
		return invalid("year_number")
	}
	for i, other := range s.vehicles.All() {
		if i != selfIdx && other.Plate == v.Plate {
			return invalid("plate_exists")
		}
	}
	return nil
}

func (s *Srv) createVehicle(f VehicleForm) (models.Vehicle, error) {
	v := vehicleFromForm(f, 0)
	if err := s.validateVehicle(v, -1); err != nil {
		return models.Vehicle{}, err
	}
	snap := s.vehicles.Snapshot()
	v.ID = s.vehicles.NextID()
	s.vehicles.Append(v)
	if err := s.saveVehicles(snap); err != nil {
		return models.Vehicle{}, err
	}
	return v, nil
}

func (s *Srv) updateVehicle(id int, f VehicleForm) (bool, error) {
	idx := s.vehicles.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	v := vehicleFromForm(f, id)
	if err := s.validateVehicle(v, idx); err != nil {
		return false, err
	}
	snap := s.vehicles.Snapshot()
	s.vehicles.ReplaceAt(idx, v)
	return true, s.saveVehicles(snap)
}

func (s *Srv) deleteVehicle(id int) (bool, error) {
	idx := s.vehicles.IndexByID(id)
	if idx < 0 {
		return false, nil
	}
	snap := s.vehicles.Snapshot()
	s.vehicles.RemoveAt(idx)
	return true, s.saveVehicles(snap)
}

// ---- HTTP ----

func (c *VehicleController) renderLocked(ctx *gin.Context) {
	s := c.s
	filtered := listview.Filter(s.vehicles.All(), s.vehicleView.Search, matchVehicle)
	pg := listview.Paginate(filtered, s.vehicleView.Page)
	s.vehicleView.Page = pg.Page
	ctx.JSON(http.StatusOK, gin.H{
		"items":             pg.Items,
		"page":              pg.Page,
		"total_pages":       pg.TotalPages,
		"total":             pg.Total,
		"page_info":         fmt.Sprintf(s.tr.T("page_info"), pg.Page, pg.TotalPages, pg.Total),
		"insurance_expired": s.expiredInsurance(today()),
	})
}

func (c *VehicleController) List(ctx *gin.Context) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.renderLocked(ctx)
}

func (c *VehicleController) Search(ctx *gin.Context) {
	var req struct {
		Q string `json:"q"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.vehicleView.SetSearch(req.Q)
	c.renderLocked(ctx)
}

func (c *VehicleController) Sort(ctx *gin.Context) {
	var req struct {
		Column string `json:"column"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	// 方向先翻转再查列名，未知列也会翻转（沿用原来的表头点击行为）
	rev := c.s.vehicleView.ToggleReverse()
	if key := vehicleSortKey(req.Column); key != nil {
		listview.SortSlice(c.s.vehicles.All(), key, rev)
	}
	c.renderLocked(ctx)
}

func (c *VehicleController) PageNav(ctx *gin.Context) {
	var req struct {
		Dir  string `json:"dir"`
		Page int    `json:"page"`
	}
	_ = ctx.ShouldBindJSON(&req)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	switch {
	case req.Page > 0:
		c.s.vehicleView.Page = req.Page // 越界由分页收回
	case req.Dir == "prev":
		c.s.vehicleView.Prev()
	case req.Dir == "next":
		filtered := listview.Filter(c.s.vehicles.All(), c.s.vehicleView.Search, matchVehicle)
		c.s.vehicleView.Next(len(filtered))
	}
	c.renderLocked(ctx)
}

func (c *VehicleController) Create(ctx *gin.Context) {
	var form VehicleForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	v, err := c.s.createVehicle(form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "vehicle": v})
}

func (c *VehicleController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	var form VehicleForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	ok, err := c.s.updateVehicle(id, form)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *VehicleController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if ctx.Query("confirm") != "1" {
		// 先返回确认文案，前端确认后带 confirm=1 再调一次
		idx := c.s.vehicles.IndexByID(id)
		if idx < 0 {
			ctx.JSON(http.StatusOK, gin.H{"ok": false})
			return
		}
		msg := fmt.Sprintf(c.s.tr.T("confirm_delete"), c.s.vehicles.At(idx).Plate)
		ctx.JSON(http.StatusOK, gin.H{"confirm": msg})
		return
	}
	ok, err := c.s.deleteVehicle(id)
	if err != nil {
		c.s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": ok})
}

func (c *VehicleController) ExportCSV(ctx *gin.Context) {
	s := c.s
	s.mu.Lock()
	defer s.mu.Unlock()
	tr := s.tr
	header := []string{
		tr.T("vehicle_id"), tr.T("license_plate"), tr.T("model"), tr.T("year"),
		tr.T("insurance_expiry"), tr.T("mileage"), tr.T("monthly_price"), tr.T("deposit"),
	}
	filtered := listview.Filter(s.vehicles.All(), s.vehicleView.Search, matchVehicle)
	rows := make([][]string, 0, len(filtered))
	for _, v := range filtered {
		rows = append(rows, []string{
			strconv.Itoa(v.ID), v.Plate, v.Model, v.Year,
			v.Insurance, v.Mileage, v.MonthlyPrice, v.Deposit,
		})
	}
	writeCSV(ctx, "vehicles.csv", header, rows)
}
