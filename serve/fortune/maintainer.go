package fortune

import (
	"context"
	"time"

	"github.com/PolarTechJordan/richtemple/cmn"
	"go.uber.org/zap"
)

// RunMaintainer 每日零点后预生成当日运势，ctx 结束时返回
func (s *Service) RunMaintainer(ctx context.Context) {
	for {
		// 计算距离下一次 00:00 的时间
		duration := cmn.DurationUntilNext(s.Now(), 0, 0, 0)
		z.Info("daily-fortune-maintainer sleep until next target time", zap.Duration("duration", duration))

		timer := time.NewTimer(duration)

		select {
		case <-ctx.Done():
			z.Info("daily-fortune-maintainer stopped")
			timer.Stop()
			return
		case <-timer.C:
			_, _, err := s.GetDailyFortune(ctx)
			if err != nil {
				z.Error("failed to pre-generate daily fortune", zap.Error(err))
				continue
			}
		}
	}
}
