package cmn

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var (
	GormDB *gorm.DB
)

func InitDB() {
	// 从配置文件中读取数据库连接配置
	host := viper.GetString("dbms.host")
	port := viper.GetString("dbms.port")
	user := viper.GetString("dbms.user")
	pwd := viper.GetString("dbms.pwd")
	dbname := viper.GetString("dbms.db")
	if host == "" || port == "" || user == "" || pwd == "" || dbname == "" {
		logger.Fatal("[ FAIL ] db config not found")
		return
	}

	dsn := fmt.Sprintf("user=%v password=%v dbname=%v host=%v port=%v sslmode=disable TimeZone=Asia/Shanghai", user, pwd, dbname, host, port)

	var err error
	GormDB, err = initDBPool(dsn)
	if err != nil {
		logger.Fatal("[ FAIL ] init db pool failed: " + err.Error())
		return
	}

	err = MigrateTables(GormDB)
	if err != nil {
		logger.Fatal("[ FAIL ] init table failed: " + err.Error())
	}

	MiniLogger.Info("[ OK ] db module initialed")
}

// 初始化数据库连接池
func initDBPool(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Error),
	})
	if err != nil {
		logger.Error("connect to pg failed: " + err.Error())
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("get sql.DB failed: " + err.Error())
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("ping pg failed: " + err.Error())
		return nil, err
	}

	logger.Info("PG pool initialed")

	return db, nil
}

// MigrateTables 自动迁移所有表
func MigrateTables(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}

	err := db.AutoMigrate(
		&TDivination{},
		&TOffering{},
		&TDailyFortune{},
		&TTalisman{})
	if err != nil {
		logger.Error("auto migrate failed: " + err.Error())
		return err
	}

	logger.Info("tables migrated")
	return nil
}
