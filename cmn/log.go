package cmn

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir = "logs"
)

var (
	logger     = zap.NewNop()
	MiniLogger = zap.NewNop()
)

// InitLogger 初始化全局日志
// debug 为 true 时输出带颜色的控制台日志，否则输出 JSON 到控制台和 logs 目录下的文件
func InitLogger(debug bool) {
	var (
		l   *zap.Logger
		err error
	)

	if debug {
		l = newDevLogger()
	} else {
		err = InitDir(logDir)
		if err != nil {
			fmt.Printf("init log dir failed: %v\n", err)
			os.Exit(1)
		}

		logFileName := filepath.Join(logDir, time.Now().Format("2006-01-02T15-04-05")+".log")
		l, err = newProdLogger(logFileName)
		if err != nil {
			fmt.Printf("init prod logger failed: %v\n", err)
			os.Exit(1)
		}
	}

	zap.ReplaceGlobals(l)
	logger = l
	MiniLogger = newMiniLogger()

	MiniLogger.Info("[ OK ] log module initialized")
}

// GetLogger 获取全局的logger
func GetLogger() *zap.Logger {
	return logger
}

// SetLogger 替换全局 logger，测试中注入 zaptest 使用
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func newDevLogger() *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "T"
	encoderConfig.CallerKey = "C"
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.FullCallerEncoder

	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), zapcore.DebugLevel)

	return zap.New(consoleCore, zap.AddCaller())
}

func newProdLogger(logFilePath string) (*zap.Logger, error) {
	if logFilePath == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	file, err := os.Create(logFilePath)
	if err != nil {
		return nil, fmt.Errorf("create log file failed: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	// 控制台与文件都记录 Info 及以上
	consoleCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), zapcore.InfoLevel)

	return zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller()), nil
}

// newMiniLogger 只输出 msg 与字段，用于启动过程的 [ OK ] 提示
func newMiniLogger() *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey: "msg",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		zapcore.InfoLevel,
	)

	return zap.New(core)
}
