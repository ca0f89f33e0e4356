// controllers/srv.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/m1075397715/car-rental-management/db"
	"github.com/m1075397715/car-rental-management/i18n"
	"github.com/m1075397715/car-rental-management/listview"
	"github.com/m1075397715/car-rental-management/models"
	"github.com/m1075397715/car-rental-management/store"
)

// Srv 聚合四个镜像和各列表页状态。进程单用户使用，
// 一把锁串行化所有请求，保持原来单线程模型的语义。
type Srv struct {
	mu     sync.Mutex
	Store  *db.Store
	tr     *i18n.Translator
	dbFile string

	vehicles  *store.Mirror[models.Vehicle]
	customers *store.Mirror[models.Customer]
	orders    *store.Mirror[models.Order]
	fines     *store.Mirror[models.Fine]

	vehicleView  *listview.State
	customerView *listview.State
	orderView    *listview.State
	fineView     *listview.State
}

// NewSrv 建好镜像并从数据库做首次全量加载。
func NewSrv(st *db.Store, tr *i18n.Translator, dbFile string) (*Srv, error) {
	s := &Srv{
		Store:  st,
		tr:     tr,
		dbFile: dbFile,

		vehicles:  store.NewMirror(1, func(v models.Vehicle) int { return v.ID }),
		customers: store.NewMirror(1, func(c models.Customer) int { return c.ID }),
		orders:    store.NewMirror(1001, func(o models.Order) int { return o.ID }),
		fines:     store.NewMirror(1, func(f models.Fine) int { return f.ID }),

		vehicleView:  listview.NewState(),
		customerView: listview.NewState(),
		orderView:    listview.NewState(),
		fineView:     listview.NewState(),
	}

	vs, err := st.LoadVehicles()
	if err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	s.vehicles.Load(vs)

	cs, err := st.LoadCustomers()
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	s.customers.Load(cs)

	os, err := st.LoadOrders()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	s.orders.Load(os)

	fs, err := st.LoadFines()
	if err != nil {
		return nil, fmt.Errorf("load fines: %w", err)
	}
	s.fines.Load(fs)

	logrus.WithFields(logrus.Fields{
		"vehicles": s.vehicles.Len(), "customers": s.customers.Len(),
		"orders": s.orders.Len(), "fines": s.fines.Len(),
	}).Info("mirrors loaded")
	return s, nil
}

// MustSrv 启动入口：加载失败直接退出。
func MustSrv(st *db.Store, tr *i18n.Translator, dbFile string) *Srv {
	s, err := NewSrv(st, tr, dbFile)
	if err != nil {
		logrus.Fatalf("load mirrors: %v", err)
	}
	return s
}

func (s *Srv) Translator() *i18n.Translator { return s.tr }

// ---- 镜像 -> 数据库整表写回，失败回滚镜像 ----

func (s *Srv) saveVehicles(snapshot []models.Vehicle) error {
	if err := s.Store.ReplaceVehicles(s.vehicles.All()); err != nil {
		s.vehicles.Restore(snapshot)
		return err
	}
	return nil
}

func (s *Srv) saveCustomers(snapshot []models.Customer) error {
	if err := s.Store.ReplaceCustomers(s.customers.All()); err != nil {
		s.customers.Restore(snapshot)
		return err
	}
	return nil
}

func (s *Srv) saveOrders(snapshot []models.Order) error {
	if err := s.Store.ReplaceOrders(s.orders.All()); err != nil {
		s.orders.Restore(snapshot)
		return err
	}
	return nil
}

func (s *Srv) saveFines(snapshot []models.Fine) error {
	if err := s.Store.ReplaceFines(s.fines.All()); err != nil {
		s.fines.Restore(snapshot)
		return err
	}
	return nil
}

// fail 统一的错误应答：校验错误 400 带本地化文案，其余 500。
func (s *Srv) fail(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": s.tr.T(ve.Key)})
		return
	}
	logrus.Errorf("persist failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
