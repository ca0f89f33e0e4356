package controllers

import (
	"path/filepath"
	"testing"

	"github.com/m1075397715/car-rental-management/db"
	"github.com/m1075397715/car-rental-management/i18n"
	"github.com/m1075397715/car-rental-management/models"
)

func newTestSrv(t *testing.T) *Srv {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s, err := NewSrv(db.NewStore(conn), i18n.New("zh"), path)
	if err != nil {
		t.Fatalf("srv: %v", err)
	}
	return s
}

func mustVehicle(t *testing.T, s *Srv, f VehicleForm) models.Vehicle {
	t.Helper()
	v, err := s.createVehicle(f)
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return v
}

func mustCustomer(t *testing.T, s *Srv, f CustomerForm) models.Customer {
	t.Helper()
	c, err := s.createCustomer(f)
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}

func TestCreateVehicleAssignsIDAndPersists(t *testing.T) {
	s := newTestSrv(t)
	v := mustVehicle(t, s, VehicleForm{Plate: " a12345 ", Model: "Camry", Year: "2022"})
	if v.ID != 1 {
		t.Fatalf("first vehicle id should be 1, got %d", v.ID)
	}
	if v.Plate != "A12345" {
		t.Fatalf("plate should be trimmed and uppercased, got %q", v.Plate)
	}
	vs, err := s.Store.LoadVehicles()
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 1 || vs[0].Plate != "A12345" {
		t.Fatalf("vehicle not persisted: %+v", vs)
	}
}

func TestDuplicatePlateRejected(t *testing.T) {
	s := newTestSrv(t)
	mustVehicle(t, s, VehicleForm{Plate: "A12345", Model: "Camry", Year: "2022"})
	_, err := s.createVehicle(VehicleForm{Plate: "a12345", Model: "Civic", Year: "2023"})
	ve, ok := err.(*ValidationError)
	if !ok || ve.Key != "plate_exists" {
		t.Fatalf("want plate_exists, got %v", err)
	}
	if s.vehicles.Len() != 1 {
		t.Fatalf("rejected create must not touch the mirror, len=%d", s.vehicles.Len())
	}
}

func TestUpdateVehicleKeepingPlate(t *testing.T) {
	s := newTestSrv(t)
	v := mustVehicle(t, s, VehicleForm{Plate: "A12345", Model: "Camry", Year: "2022"})
	// 不改车牌的编辑不能触发查重
	ok, err := s.updateVehicle(v.ID, VehicleForm{Plate: "A12345", Model: "Camry", Year: "2023"})
	if err != nil || !ok {
		t.Fatalf("update failed: ok=%v err=%v", ok, err)
	}
	if s.vehicles.At(0).Year != "2023" {
		t.Fatalf("year not updated: %+v", s.vehicles.At(0))
	}
}

func TestCustomerPhoneValidation(t *testing.T) {
	s := newTestSrv(t)
	if _, err := s.createCustomer(CustomerForm{Name: "张三", Phone: "12ab3"}); err == nil {
		t.Fatal("non-digit phone should fail")
	}
	if _, err := s.createCustomer(CustomerForm{Name: "张三", Phone: "12345"}); err == nil {
		t.Fatal("short phone should fail")
	}
	mustCustomer(t, s, CustomerForm{Name: "张三", Phone: "501234567", Status: "normal"})
	_, err := s.createCustomer(CustomerForm{Name: "李四", Phone: "501234567"})
	ve, ok := err.(*ValidationError)
	if !ok || ve.Key != "phone_exists" {
		t.Fatalf("want phone_exists, got %v", err)
	}
	// 不改手机号的编辑要能通过
	c := s.customers.At(0)
	if ok, err := s.updateCustomer(c.ID, CustomerForm{Name: "张三丰", Phone: c.Phone}); err != nil || !ok {
		t.Fatalf("self update failed: ok=%v err=%v", ok, err)
	}
}

func TestCustomerStatusLabelReversed(t *testing.T) {
	s := newTestSrv(t)
	c := mustCustomer(t, s, CustomerForm{Name: "张三", Phone: "501234567", Status: "黑名单"})
	if c.Status != models.CustomerBlacklist {
		t.Fatalf("label should be reversed to token, got %q", c.Status)
	}
}

func TestCustomerSearchIgnoresStatus(t *testing.T) {
	s := newTestSrv(t)
	mustCustomer(t, s, CustomerForm{Name: "张三", Phone: "501234567", Status: "vip"})
	// 状态不在搜索范围内
	if matchCustomer(s.customers.At(0), "vip") {
		t.Fatal("status must not match search")
	}
	if !matchCustomer(s.customers.At(0), "张") {
		t.Fatal("name should match")
	}
	if !matchCustomer(s.customers.At(0), "5012") {
		t.Fatal("phone substring should match")
	}
}

func TestOrderNeedsCustomersAndVehicles(t *testing.T) {
	s := newTestSrv(t)
	_, err := s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: "2026-02-01", Amount: "1000", Status: "ongoing"})
	ve, ok := err.(*ValidationError)
	if !ok || ve.Key != "add_customer_vehicle_first" {
		t.Fatalf("want add_customer_vehicle_first, got %v", err)
	}
}

func seedOrderDeps(t *testing.T, s *Srv) {
	t.Helper()
	mustVehicle(t, s, VehicleForm{Plate: "A12345", Model: "Camry", Year: "2022"})
	mustCustomer(t, s, CustomerForm{Name: "张三", Phone: "501234567", Status: "normal"})
}

func TestOrderIDBaseAndValidation(t *testing.T) {
	s := newTestSrv(t)
	seedOrderDeps(t, s)

	o, err := s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: "2026-02-01", Amount: "1500", Status: "进行中"})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if o.ID != 1001 {
		t.Fatalf("first order id should be 1001, got %d", o.ID)
	}
	if o.Status != models.OrderOngoing {
		t.Fatalf("status label not reversed: %q", o.Status)
	}

	// 起始晚于结束
	_, err = s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-03-01", EndDate: "2026-02-01", Amount: "1", Status: "ongoing"})
	ve, ok := err.(*ValidationError)
	if !ok || ve.Key != "date_invalid" {
		t.Fatalf("want date_invalid, got %v", err)
	}
	// 金额非数字
	_, err = s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: "2026-02-01", Amount: "abc", Status: "ongoing"})
	ve, ok = err.(*ValidationError)
	if !ok || ve.Key != "amount_invalid" {
		t.Fatalf("want amount_invalid, got %v", err)
	}
	if s.orders.Len() != 1 {
		t.Fatalf("failed creates must not touch the mirror, len=%d", s.orders.Len())
	}
}

func TestRenewOrder(t *testing.T) {
	s := newTestSrv(t)
	seedOrderDeps(t, s)
	o, err := s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: "2026-02-01", Amount: "1500", Status: "overdue"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.renewOrder(o.ID, "2026-01-15"); err == nil {
		t.Fatal("renew to an earlier date should fail")
	}
	if _, err := s.renewOrder(o.ID, "2026-02-01"); err == nil {
		t.Fatal("renew to the same date should fail")
	}
	ok, err := s.renewOrder(o.ID, "2026-03-01")
	if err != nil || !ok {
		t.Fatalf("renew failed: ok=%v err=%v", ok, err)
	}
	got := s.orders.At(0)
	if got.EndDate != "2026-03-01" || got.Status != models.OrderOngoing {
		t.Fatalf("renew result wrong: %+v", got)
	}
}

func TestFineValidation(t *testing.T) {
	s := newTestSrv(t)
	seedOrderDeps(t, s)

	if _, err := s.createFine(FineForm{Vehicle: "A12345", Customer: "", FineType: "超速", Amount: "500"}); err == nil {
		t.Fatal("empty customer should fail")
	}
	_, err := s.createFine(FineForm{Vehicle: "A12345", Customer: "张三", FineType: "超速", Amount: "5.0.0"})
	ve, ok := err.(*ValidationError)
	if !ok || ve.Key != "amount_invalid" {
		t.Fatalf("want amount_invalid, got %v", err)
	}
	f, err := s.createFine(FineForm{Vehicle: "a12345", Customer: "张三", FineType: "超速", Amount: "500", FineDate: "2026-03-01", Paid: true})
	if err != nil {
		t.Fatal(err)
	}
	if f.ID != 1 || f.Vehicle != "A12345" || !f.Paid {
		t.Fatalf("fine create wrong: %+v", f)
	}
}

func TestDeleteSyncsStore(t *testing.T) {
	s := newTestSrv(t)
	v := mustVehicle(t, s, VehicleForm{Plate: "A12345", Model: "Camry", Year: "2022"})

	ok, err := s.deleteVehicle(v.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	vs, err := s.Store.LoadVehicles()
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 0 {
		t.Fatalf("store should be empty after delete, got %d", len(vs))
	}
	// 再删同一条：查不到，静默返回
	ok, err = s.deleteVehicle(v.ID)
	if err != nil || ok {
		t.Fatalf("missing id should be a silent no-op, ok=%v err=%v", ok, err)
	}
}

func TestCustomerOrderHistory(t *testing.T) {
	s := newTestSrv(t)
	seedOrderDeps(t, s)
	mustCustomer(t, s, CustomerForm{Name: "李四", Phone: "509876543", Status: "normal"})
	if _, err := s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: "2026-02-01", Amount: "1", Status: "ongoing"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.createOrder(OrderForm{Customer: "李四", Vehicle: "A12345", StartDate: "2026-02-02", EndDate: "2026-03-01", Amount: "1", Status: "completed"}); err != nil {
		t.Fatal(err)
	}
	got := s.customerOrders("张三")
	if len(got) != 1 || got[0].Customer != "张三" {
		t.Fatalf("history wrong: %+v", got)
	}
}

func TestReminders(t *testing.T) {
	s := newTestSrv(t)
	seedOrderDeps(t, s)
	mustVehicle(t, s, VehicleForm{Plate: "B67890", Model: "Civic", Year: "2023", Insurance: "2026-01-01"})

	d := "2026-06-15"
	expired := s.expiredInsurance(d)
	if len(expired) != 1 || expired[0] != "B67890" {
		t.Fatalf("insurance reminder wrong: %v", expired)
	}

	mk := func(end, status string) {
		t.Helper()
		if _, err := s.createOrder(OrderForm{Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: end, Amount: "1", Status: status}); err != nil {
			t.Fatal(err)
		}
	}
	mk("2026-06-01", "ongoing")   // 已到期
	mk("2026-06-17", "ongoing")   // 3 天内
	mk("2026-06-30", "ongoing")   // 还早
	mk("2026-06-01", "completed") // 已完成不提醒

	ids := s.expiredOrders(d)
	if len(ids) != 1 || ids[0] != 1001 {
		t.Fatalf("expired orders wrong: %v", ids)
	}
	due := s.dueSoonOrders(d)
	if len(due) != 1 || due[0] != 1002 {
		t.Fatalf("due soon wrong: %v", due)
	}
}
