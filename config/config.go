package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config 从环境变量读取
type Config struct {
	Port      string // HTTP 端口
	DBFile    string // SQLite 数据库文件
	DataDir   string // 旧版 JSON 数据文件目录
	Lang      string // 默认语言 zh/en
	WebOrigin string // 本地前端来源
}

func LoadEnv() {
	// .env 可选，没有就用默认值
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file: %v", err)
	}
}

func Load() Config {
	LoadEnv()
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	return Config{
		Port:      get("PORT", "3001"),
		DBFile:    get("DB_FILE", "rental.db"),
		DataDir:   get("DATA_DIR", "."),
		Lang:      get("LANG_DEFAULT", "zh"),
		WebOrigin: get("WEB_ORIGIN", "http://127.0.0.1:3001"),
	}
}
