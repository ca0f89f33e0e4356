package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/m1075397715/car-rental-management/db"
)

// SystemController 时钟、语言切换、备份这些页面之外的全局操作。
type SystemController struct{ s *Srv }

func NewSystemController(s *Srv) *SystemController { return &SystemController{s: s} }

// 迪拜无夏令时，加载失败时退回固定 UTC+4
var dubai = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		return time.FixedZone("GST", 4*3600)
	}
	return loc
}()

// Clock 阿联酋当前时间。
func (c *SystemController) Clock(ctx *gin.Context) {
	now := time.Now().In(dubai)
	ctx.JSON(http.StatusOK, gin.H{
		"label": c.s.tr.T("uae_time"),
		"time":  now.Format("2006-01-02 15:04:05"),
	})
}

// SwitchLang 切换语言。带 lang 参数则切到指定语言，否则中英互换。
func (c *SystemController) SwitchLang(ctx *gin.Context) {
	var req struct {
		Lang string `json:"lang"`
	}
	_ = ctx.ShouldBindJSON(&req)
	tr := c.s.tr
	code := req.Lang
	if code == "" {
		if tr.Lang() == "zh" {
			code = "en"
		} else {
			code = "zh"
		}
	}
	if !tr.SetLang(code) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown lang"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "lang": tr.Lang(), "message": tr.T("switch_success")})
}

// Backup 备份数据库文件。带 path 参数时拷贝到服务器本地路径，
// 否则直接把库文件作为附件下载。
func (c *SystemController) Backup(ctx *gin.Context) {
	s := c.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if path := ctx.Query("path"); path != "" {
		if err := db.BackupTo(s.dbFile, path); err != nil {
			logrus.Errorf("backup to %s: %v", path, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": s.tr.T("backup_failed")})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "message": s.tr.T("backup_success")})
		return
	}
	ctx.FileAttachment(s.dbFile, "rental_backup.db")
}
