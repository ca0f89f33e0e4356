package db

import (
	"fmt"
	"io"
	"os"
)

// BackupTo 把数据库文件逐字节拷贝到目标路径。
// 进程内所有写入都在同一把锁下串行，拷贝期间不会有并发写。
func BackupTo(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return out.Sync()
}
