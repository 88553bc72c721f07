package ritual

import (
	"context"
	"fmt"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordOffering 为占卜记录保存一次上香
// 占卜记录不存在时返回包裹 gorm.ErrRecordNotFound 的错误
func RecordOffering(ctx context.Context, db *gorm.DB, divinationId uuid.UUID, offering Offering) (cmn.TOffering, error) {
	if db == nil {
		db = cmn.GormDB
	}
	if divinationId == uuid.Nil {
		return cmn.TOffering{}, fmt.Errorf("divinationId is nil")
	}

	record := cmn.TOffering{
		Id:            uuid.New(),
		DivinationId:  divinationId,
		WalletAddress: offering.WalletAddress,
		Amount:        offering.Amount,
		Currency:      offering.Currency,
		TxHash:        offering.TxHash,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&cmn.TDivination{}).Where("id = ?", divinationId).Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to query divination: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("divination %s: %w", divinationId, gorm.ErrRecordNotFound)
		}

		return tx.Create(&record).Error
	})
	if err != nil {
		z.Error("failed to record offering", zap.Error(err), zap.String("divinationId", divinationId.String()))
		return cmn.TOffering{}, err
	}

	z.Info("offering recorded",
		zap.String("offeringId", record.Id.String()),
		zap.String("wallet", FormatAddress(record.WalletAddress)),
		zap.String("amount", record.Amount+" "+record.Currency))

	return record, nil
}
