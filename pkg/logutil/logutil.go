package logutil

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Level 日志级别，值越小打印得越多
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// 为了让 cobra 的 VarP 直接接收 Level，实现 pflag.Value 接口(String Set Type)
func (l *Level) String() string {
	if name, ok := levelNames[*l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(*l))
}

func (l *Level) Set(val string) error {
	lv, err := ParseLevel(val)
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

func (l *Level) Type() string {
	return "level"
}

// ParseLevel 不区分大小写
func ParseLevel(s string) (Level, error) {
	for lv, name := range levelNames {
		if strings.EqualFold(s, name) {
			return lv, nil
		}
	}
	return INFO, fmt.Errorf("无效的日志级别: %s", s)
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，output 为 stdout 或者文件路径（追加写）
// 重复调用会关闭之前打开的文件
func InitLogger(output string, level Level) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if output == "" || output == "stdout" {
		logFile = os.Stdout
	} else if output == "stderr" {
		logFile = os.Stderr
	} else {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logFile = os.Stderr
			logger = log.New(logFile, "", log.LstdFlags)
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
		logFile = f
	}
	logger = log.New(logFile, "", log.LstdFlags)
	currentLevel = level
	return nil
}

// Enabled 调用方可以先判断，避免构造昂贵的参数
func Enabled(level Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return level >= currentLevel
}

func logMessage(level Level, msg string, args ...any) {
	if !Enabled(level) {
		return
	}
	mu.Lock()
	if logger == nil {
		logFile = os.Stdout
		logger = log.New(logFile, "", log.LstdFlags)
	}
	l := logger
	mu.Unlock()

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	file = filepath.Base(file)

	formatted := make([]any, 0, len(args))
	for _, arg := range args {
		formatted = append(formatted, formatArg(arg))
	}
	l.Printf("[%s:%d] %s", file, line, fmt.Sprintf(msg, formatted...))
}

// 集合类型转成 JSON 更好看，其它原样输出
func formatArg(arg any) any {
	v := reflect.ValueOf(arg)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Map {
		return arg
	}
	data, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("无法格式化: %v", err)
	}
	return string(data)
}

func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 会附带调用堆栈
func Error(msg string, args ...any) {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	stack := strings.ReplaceAll(string(buf[:n]), "%", "%%")
	logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n"+stack, args...)
}

// CloseLogger 关闭日志文件（如果有的话）
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil || logFile == os.Stdout || logFile == os.Stderr {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = nil
	return err
}
