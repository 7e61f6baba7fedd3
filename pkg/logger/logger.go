package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

func init() {
	log = zap.NewNop().Sugar()
}

// Init builds the global logger on stdout. "production" gets JSON output,
// anything else gets a colored console encoder at debug level.
func Init(environment string) {
	InitTo(environment, os.Stdout)
}

// InitTo is Init with another sink; the CLI logs to stderr
func InitTo(environment string, out zapcore.WriteSyncer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var (
		encoder zapcore.Encoder
		level   zapcore.Level
		opts    = []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	)

	if environment == "production" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
		level = zapcore.InfoLevel
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zapcore.DebugLevel
		opts = append(opts, zap.Development())
	}

	core := zapcore.NewCore(encoder, out, level)
	log = zap.New(core, opts...).Sugar()
}

// Sync flushes buffered entries
func Sync() {
	_ = log.Sync()
}

func Debug(msg string, args ...interface{}) {
	log.Debugw(msg, fields(args)...)
}

func Info(msg string, args ...interface{}) {
	log.Infow(msg, fields(args)...)
}

func Warn(msg string, args ...interface{}) {
	log.Warnw(msg, fields(args)...)
}

func Error(msg string, args ...interface{}) {
	log.Errorw(msg, fields(args)...)
}

func Fatal(msg string, args ...interface{}) {
	log.Fatalw(msg, fields(args)...)
}

// fields turns the loose argument list into zap key/value pairs. A bare error
// in key position is logged under "error" so logger.Error("msg", err) works.
func fields(args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			out = append(out, zap.Error(v))
		case string:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i++
			} else {
				out = append(out, zap.String("detail", v))
			}
		default:
			out = append(out, zap.Any("arg", v))
		}
	}
	return out
}
