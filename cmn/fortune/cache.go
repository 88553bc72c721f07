package fortune

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

const cacheKeyPrefix = "dailyFortune"

// DefaultLunarLabel 默认运势使用的农历标签
const DefaultLunarLabel = "农历吉日"

// Entry 每日运势缓存项
type Entry struct {
	Fortune   string `json:"fortune"`   // 运势文本
	Date      string `json:"date"`      // 公历日期
	LunarDate string `json:"lunarDate"` // 农历日期
	Timestamp int64  `json:"timestamp"` // 生成时间（毫秒）
}

// CacheKey 按 t 所在时区的公历日期生成缓存键，月份从 1 开始，不补零
func CacheKey(t time.Time) string {
	return fmt.Sprintf("%s_%d_%d_%d", cacheKeyPrefix, t.Year(), int(t.Month()), t.Day())
}

// IsCacheValid 缓存项的生成日期与 now 为同一公历日时有效
func IsCacheValid(entry Entry, now time.Time) bool {
	if entry.Timestamp <= 0 {
		return false
	}
	created := time.UnixMilli(entry.Timestamp).In(now.Location())
	return CacheKey(created) == CacheKey(now)
}

// NewEntry 以 at 为生成时间构造缓存项
func NewEntry(fortune string, at time.Time) Entry {
	return Entry{
		Fortune:   fortune,
		Date:      DateLabel(at),
		LunarDate: LunarDateLabel(at),
		Timestamp: at.UnixMilli(),
	}
}

// NewDefaultEntry 远程生成失败时使用的默认缓存项
func NewDefaultEntry(at time.Time) Entry {
	return Entry{
		Fortune:   DefaultFortune(at),
		Date:      DateLabel(at),
		LunarDate: DefaultLunarLabel,
		Timestamp: at.UnixMilli(),
	}
}

// DateLabel 形如 2024/1/15
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// LunarDateLabel 形如 腊月初五
func LunarDateLabel(t time.Time) string {
	lunar := calendar.NewLunarFromDate(t)
	return lunar.GetMonthInChinese() + "月" + lunar.GetDayInChinese()
}

// DefaultFortune 默认运势文本
func DefaultFortune(t time.Time) string {
	return fmt.Sprintf(defaultFortuneTemplate, DateLabel(t))
}

const defaultFortuneTemplate = `黄道吉日
%s
农历吉日 吉
宜 祈福上香 拜访长辈 整理房间
忌 冲动购物 与人争执 过度饮食

财运★★★★☆
财运平稳，有小额收入机会，宜谨慎理财。

事业★★★★☆
工作运势良好，适合推进重要项目，与同事关系和谐。

感情★★★★☆
感情运势平稳，单身者宜多参加社交活动。

健康★★★★★
身体状况良好，注意作息规律和饮食平衡。

今日建议
多行善事，保持善念，诚心祈福，福运自然来临。

今日幸运
幸运颜色: 金色
幸运数字: 8, 18, 28
幸运方位: 东南
吉时: 09:00-11:00`
