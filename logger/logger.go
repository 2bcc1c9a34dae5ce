package logger

import (
	"licencas/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New cria o logger da aplicação e o registra como global (zap.L()).
// Em produção usa JSON; fora dela, o logger de desenvolvimento.
func New(cfg config.Configuration) (*zap.Logger, error) {
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "production" {
		conf := zap.NewProductionConfig()
		conf.EncoderConfig.TimeKey = "timestamp"
		conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.EncoderConfig.StacktraceKey = "stacktrace"
		conf.EncoderConfig.LevelKey = "severity"
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		conf.EncoderConfig.CallerKey = "caller"
		conf.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		conf.Encoding = "json"
		conf.OutputPaths = []string{"stdout"}
		conf.ErrorOutputPaths = []string{"stderr"}

		log, err = conf.Build()
		if err != nil {
			return nil, err
		}
	}

	log = log.With(
		zap.String("env", cfg.AppEnv),
		zap.String("service_name", cfg.AppName),
	)

	zap.ReplaceGlobals(log)
	return log, nil
}
