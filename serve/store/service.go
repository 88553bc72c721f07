package store

import (
	"context"
	"fmt"

	"github.com/PolarTechJordan/richtemple/cmn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedTalismans 法物表为空时写入初始目录，返回写入条数
func SeedTalismans(ctx context.Context, db *gorm.DB) (int, error) {
	if db == nil {
		db = cmn.GormDB
	}

	seeded := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&cmn.TTalisman{}).Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to count talismans: %w", err)
		}
		if count > 0 {
			return nil
		}

		rows := make([]cmn.TTalisman, len(catalogue))
		copy(rows, catalogue)
		err = tx.Create(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to insert talismans: %w", err)
		}

		seeded = len(rows)
		return nil
	})
	if err != nil {
		z.Error("failed to seed talismans", zap.Error(err))
		return 0, err
	}

	return seeded, nil
}

// ListTalismans 按分类查询法物，all 返回全部
func ListTalismans(ctx context.Context, db *gorm.DB, category string) ([]cmn.TTalisman, error) {
	if db == nil {
		db = cmn.GormDB
	}
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown talisman category %q", category)
	}

	query := db.WithContext(ctx).Model(&cmn.TTalisman{})
	if category != CategoryAll {
		query = query.Where("category = ?", category)
	}

	talismans := make([]cmn.TTalisman, 0)
	err := query.Order("id").Find(&talismans).Error
	if err != nil {
		z.Error("failed to query talismans", zap.Error(err), zap.String("category", category))
		return nil, err
	}

	return talismans, nil
}
