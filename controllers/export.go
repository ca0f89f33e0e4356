package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeCSV 以附件形式输出 CSV。开头写 UTF-8 BOM，
// 否则 Excel 打开中文表头会乱码。
func writeCSV(ctx *gin.Context, filename string, header []string, rows [][]string) {
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)

	if _, err := ctx.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		logrus.Errorf("csv export: %v", err)
		return
	}
	w := csv.NewWriter(ctx.Writer)
	if err := w.Write(header); err != nil {
		logrus.Errorf("csv export: %v", err)
		return
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			logrus.Errorf("csv export: %v", err)
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logrus.Errorf("csv export: %v", err)
	}
}
