package fortune

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PolarTechJordan/richtemple/cmn"
	fortunecore "github.com/PolarTechJordan/richtemple/cmn/fortune"
	"github.com/PolarTechJordan/richtemple/cmn/llm"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Source 运势来源
type Source string

const (
	SourceMemory   Source = "memory"   // 进程内缓存
	SourceDB       Source = "db"       // 数据库缓存
	SourceLLM      Source = "llm"      // 大模型生成
	SourceFallback Source = "fallback" // 默认运势
)

type Service struct {
	llm llm.Service
	db  *gorm.DB
	loc *time.Location
	now func() time.Time

	memory atomic.Value // fortunecore.Entry
	mu     sync.Mutex   // 同一时间只生成一次
}

type Option func(*Service)

// WithClock 替换时钟
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithDB 指定数据库，未指定时使用 cmn.GormDB
func WithDB(db *gorm.DB) Option {
	return func(s *Service) {
		s.db = db
	}
}

func NewService(llmService llm.Service, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.Local
	}
	s := &Service{
		llm: llmService,
		loc: loc,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now 当前时间，位于运势所在时区
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) gormDB() *gorm.DB {
	if s.db != nil {
		return s.db
	}
	return cmn.GormDB
}

func (s *Service) cached(now time.Time) (fortunecore.Entry, bool) {
	entry, ok := s.memory.Load().(fortunecore.Entry)
	if !ok || !fortunecore.IsCacheValid(entry, now) {
		return fortunecore.Entry{}, false
	}
	return entry, true
}

// GetDailyFortune 获取当日运势：进程内缓存 -> 数据库缓存 -> 大模型生成 -> 默认运势
// 只有读取数据库失败时返回错误
func (s *Service) GetDailyFortune(ctx context.Context) (fortunecore.Entry, Source, error) {
	now := s.Now()
	if entry, ok := s.cached(now); ok {
		return entry, SourceMemory, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now = s.Now()
	if entry, ok := s.cached(now); ok {
		return entry, SourceMemory, nil
	}

	entry, found, err := s.load(ctx, now)
	if err != nil {
		return fortunecore.Entry{}, "", err
	}
	if found {
		s.memory.Store(entry)
		return entry, SourceDB, nil
	}

	entry, source := s.generate(ctx, now)

	err = s.store(ctx, entry)
	if err != nil {
		// 写库失败不影响本次返回
		z.Error("failed to store daily fortune", zap.Error(err))
	}
	s.memory.Store(entry)

	z.Info("daily fortune generated",
		zap.String("date", entry.Date),
		zap.String("source", string(source)))

	return entry, source, nil
}

// load 按当日缓存键读取数据库中的运势
func (s *Service) load(ctx context.Context, now time.Time) (fortunecore.Entry, bool, error) {
	var row cmn.TDailyFortune
	err := s.gormDB().WithContext(ctx).
		Where("cache_key = ?", fortunecore.CacheKey(now)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fortunecore.Entry{}, false, nil
	}
	if err != nil {
		z.Error("failed to query daily fortune", zap.Error(err))
		return fortunecore.Entry{}, false, fmt.Errorf("failed to query daily fortune: %w", err)
	}

	entry := fortunecore.Entry{
		Fortune:   row.Fortune,
		Date:      row.Date,
		LunarDate: row.LunarDate,
		Timestamp: row.Timestamp,
	}
	if !fortunecore.IsCacheValid(entry, now) {
		return fortunecore.Entry{}, false, nil
	}

	return entry, true, nil
}

// generate 调用大模型生成当日运势，失败时使用默认运势
func (s *Service) generate(ctx context.Context, now time.Time) (fortunecore.Entry, Source) {
	if s.llm == nil {
		return fortunecore.NewDefaultEntry(now), SourceFallback
	}

	date := fortunecore.DateLabel(now)
	lunarDate := fortunecore.LunarDateLabel(now)

	text, err := s.llm.Chat(ctx, systemPrompt, buildUserPrompt(date, lunarDate))
	if err != nil {
		z.Warn("failed to generate daily fortune, using default", zap.Error(err))
		return fortunecore.NewDefaultEntry(now), SourceFallback
	}
	if strings.TrimSpace(text) == "" {
		z.Warn("llm returned empty daily fortune, using default")
		return fortunecore.NewDefaultEntry(now), SourceFallback
	}

	return fortunecore.NewEntry(text, now), SourceLLM
}

// store 按缓存键写入或覆盖当日运势
func (s *Service) store(ctx context.Context, entry fortunecore.Entry) error {
	at := time.UnixMilli(entry.Timestamp).In(s.loc)
	row := cmn.TDailyFortune{
		CacheKey:  fortunecore.CacheKey(at),
		Fortune:   entry.Fortune,
		Date:      entry.Date,
		LunarDate: entry.LunarDate,
		Timestamp: entry.Timestamp,
	}

	return s.gormDB().WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"fortune", "date", "lunar_date", "timestamp", "updated_at"}),
	}).Create(&row).Error
}
