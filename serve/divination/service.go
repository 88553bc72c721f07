package divination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarTechJordan/richtemple/cmn"
	divcore "github.com/PolarTechJordan/richtemple/cmn/divination"
	"github.com/PolarTechJordan/richtemple/cmn/llm"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Source 占卜结果来源
type Source string

const (
	SourceLLM      Source = "llm"      // 大模型生成
	SourceFallback Source = "fallback" // 本地推算
)

type Service struct {
	llm llm.Service
}

func NewService(llmService llm.Service) *Service {
	return &Service{llm: llmService}
}

// Divine 进行一次占卜，大模型不可用或结果无法解析时使用本地推算，总是返回完整结果
func (s *Service) Divine(ctx context.Context, wish string, numbers [3]int) (divcore.Result, Source) {
	if s.llm != nil {
		content, err := s.llm.ChatContent(ctx, systemPrompt, buildUserPrompt(wish, numbers))
		if err == nil {
			result := divcore.ParseContent(content)
			if result.Success {
				return result, SourceLLM
			}
			z.Warn("failed to parse llm divination result, using fallback")
		} else {
			z.Warn("llm divination failed, using fallback", zap.Error(err))
		}
	}

	return divcore.ComputeFallback(wish, numbers), SourceFallback
}

// SaveRecord 保存占卜记录
func SaveRecord(ctx context.Context, db *gorm.DB, wish string, numbers [3]int, result divcore.Result, source Source) (cmn.TDivination, error) {
	if db == nil {
		db = cmn.GormDB
	}

	raw, err := json.Marshal(numbers)
	if err != nil {
		return cmn.TDivination{}, fmt.Errorf("failed to marshal numbers: %w", err)
	}

	record := cmn.TDivination{
		Id:         uuid.New(),
		Wish:       wish,
		Numbers:    datatypes.JSON(raw),
		Source:     string(source),
		Success:    result.Success,
		Divination: result.Divination,
		Prediction: result.Prediction,
		Advice:     result.Advice,
		Luck:       result.Luck,
		FullText:   result.FullText,
	}

	err = db.WithContext(ctx).Create(&record).Error
	if err != nil {
		z.Error("failed to save divination record", zap.Error(err))
		return cmn.TDivination{}, err
	}

	return record, nil
}

// QueryRecord 按ID查询占卜记录，不存在时返回 gorm.ErrRecordNotFound
func QueryRecord(ctx context.Context, db *gorm.DB, id uuid.UUID) (cmn.TDivination, error) {
	if db == nil {
		db = cmn.GormDB
	}

	var record cmn.TDivination
	err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return cmn.TDivination{}, err
	}

	return record, nil
}

// ToResult 还原记录中的占卜结果
func ToResult(record cmn.TDivination) divcore.Result {
	return divcore.Result{
		Success:    record.Success,
		Divination: record.Divination,
		Prediction: record.Prediction,
		Advice:     record.Advice,
		Luck:       record.Luck,
		FullText:   record.FullText,
	}
}
