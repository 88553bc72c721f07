package store

import (
	"context"

	"github.com/PolarTechJordan/richtemple/cmn"
	"go.uber.org/zap"
)

var z = zap.NewNop()

func Init() {
	z = cmn.GetLogger()

	n, err := SeedTalismans(context.Background(), cmn.GormDB)
	if err != nil {
		z.Fatal("[ FAIL ] failed to seed talismans", zap.Error(err))
	}

	cmn.MiniLogger.Info("[ OK ] store module initialed", zap.Int("seeded", n))
}
