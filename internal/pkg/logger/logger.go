package logger

import (
	"log"
	"os"
)

// 一个非常小的日志包装，提供项目里用到的几个方法
type Logger struct {
	std *log.Logger
}

// Init 创建日志器，env 参数保留（以后想按环境调格式）
func Init(env string) *Logger {
	l := log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)
	return &Logger{std: l}
}

func (l *Logger) Info(msg string, kvs ...interface{}) {
	l.std.Printf("INFO: %s %v", msg, kvs)
}

func (l *Logger) Debug(msg string, kvs ...interface{}) {
	l.std.Printf("DEBUG: %s %v", msg, kvs)
}

func (l *Logger) Error(msg string, kvs ...interface{}) {
	l.std.Printf("ERROR: %s %v", msg, kvs)
}

func (l *Logger) Fatal(msg string, kvs ...interface{}) {
	l.std.Printf("FATAL: %s %v", msg, kvs)
	os.Exit(1)
}
