package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/xuenqlve/properties/errors"
)

var (
	logger = zerolog.Nop()
	logFile io.Closer = nopCloser{}
)

const (
	defaultLogLevel = InfoLevel
	defaultLogPath  = "/data/logs"
	FileName        = "app.log"
	DebugLevel      = "debug"
	InfoLevel       = "info"
	WarnLevel       = "warn"
)

// Config 日志配置，零值使用默认级别与路径
type Config struct {
	Level string
	// Path 为空时使用 /data/logs，"-" 表示不写文件
	Path    string
	Console bool
}

func DefaultConfig() Config {
	return Config{
		Level:   defaultLogLevel,
		Path:    defaultLogPath,
		Console: true,
	}
}

func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		level = defaultLogLevel
	}
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel, nil
	case InfoLevel:
		return zerolog.InfoLevel, nil
	case WarnLevel:
		return zerolog.WarnLevel, nil
	default:
		return zerolog.NoLevel, errors.NewCodeError(errors.ErrCodeLogConfig, errors.Errorf("unknown log level: %s", level))
	}
}

// New 按配置构造 logger，不修改全局 logger
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	l, _, c, err := newLogger(cfg)
	return l, c, err
}

func newLogger(cfg Config) (zerolog.Logger, zerolog.Level, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), level, nil, err
	}
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"})
	}
	var closer io.Closer = nopCloser{}
	if cfg.Path != "-" {
		path := cfg.Path
		if path == "" {
			path = defaultLogPath
		}
		fileWriter, err := os.OpenFile(GetFullLogPath(path, FileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return zerolog.Nop(), level, nil, errors.Annotate(err, "open log file failed")
		}
		writers = append(writers, fileWriter)
		closer = fileWriter
	}
	if len(writers) == 0 {
		return zerolog.Nop(), level, closer, nil
	}
	multi := zerolog.MultiLevelWriter(writers...)
	return zerolog.New(multi).Level(level).With().Timestamp().Logger(), level, closer, nil
}

// Init 配置全局 logger，再次调用时关闭上一次打开的日志文件
func Init(level, path string) {
	cfg := DefaultConfig()
	cfg.Level = level
	cfg.Path = path
	l, lvl, c, err := newLogger(cfg)
	if err != nil {
		panic(fmt.Sprintf("init log failed: %s", err))
	}
	zerolog.SetGlobalLevel(lvl)
	SetLogger(l)
	_ = logFile.Close()
	logFile = c
}

func Logger() *zerolog.Logger {
	return &logger
}

func SetLogger(l zerolog.Logger) {
	logger = l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func GetFullLogPath(path, fileName string) string {
	return filepath.Join(path, fileName)
}
