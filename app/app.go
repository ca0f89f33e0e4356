package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/m1075397715/car-rental-management/config"
	"github.com/m1075397715/car-rental-management/db"
	"github.com/m1075397715/car-rental-management/i18n"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Store  *db.Store
	Tr     *i18n.Translator
	Config config.Config
}

func MustNew() *App {
	cfg := config.Load()

	// --- DB: SQLite 单文件 ---
	dbConn := db.ConnectDB(cfg.DBFile)
	st := db.NewStore(dbConn)
	st.MustImportLegacy(cfg.DataDir)

	// --- Gin ---
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r,
		DB:     dbConn,
		Store:  st,
		Tr:     i18n.New(cfg.Lang),
		Config: cfg,
	}
}
