package cmn

import (
	"fmt"
	"os"
	"time"
)

// DurationUntilNext 计算 now 到下一个 hour:minute:second 的间隔（同一时区）
func DurationUntilNext(now time.Time, hour, minute, second int) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, second, 0, now.Location())

	// 已过目标时间则顺延一天
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}

	return target.Sub(now)
}

// InitDir 初始化传入的目录路径（如不存在则创建）
func InitDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("target directory path cannot be empty")
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(dir, os.ModePerm); mkErr != nil {
			return fmt.Errorf("failed to create directory: %w", mkErr)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check target directory exist: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("target %s exist but not a directory", dir)
	}

	return nil
}
