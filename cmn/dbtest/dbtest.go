// Package dbtest opens migrated in-memory databases for package tests.
package dbtest

import (
	"testing"

	"github.com/PolarTechJordan/richtemple/cmn"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open 打开一个迁移好的内存 sqlite，并替换 cmn.GormDB 与全局 logger，测试结束后还原
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	prevDB, prevLogger := cmn.GormDB, cmn.GetLogger()
	cmn.SetLogger(zaptest.NewLogger(t))

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// 内存库按连接隔离，只保留一个连接
	sqlDB.SetMaxOpenConns(1)

	if err := cmn.MigrateTables(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cmn.GormDB = db
	t.Cleanup(func() {
		_ = sqlDB.Close()
		cmn.GormDB = prevDB
		cmn.SetLogger(prevLogger)
	})

	return db
}
