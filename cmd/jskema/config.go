package main

import (
	"errors"
	"flag"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/source"
)

// config keys; flags with the same names override them.
const (
	keyConfig    = "config"
	keyStrict    = "strict"
	keyMaxErrors = "max-errors"
	keyMaxDepth  = "max-depth"
	keyLang      = "lang"
	keyLogLevel  = "log.level"
	keyLogFile   = "log.file"
)

// loadConfig layers defaults, an optional config file, JSKEMA_* environment
// variables and explicitly set flags, in increasing precedence.
func loadConfig(fs *flag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyStrict, false)
	v.SetDefault(keyMaxErrors, 0)
	v.SetDefault(keyMaxDepth, 0)
	v.SetDefault(keyLang, "en")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFile, "")

	v.SetEnvPrefix("jskema")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	fs.Visit(func(f *flag.Flag) {
		v.Set(strings.Replace(f.Name, "log-", "log.", 1), f.Value.(flag.Getter).Get())
	})

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func registryOptions(v *viper.Viper, logger *zap.Logger) []jskema.RegistryOption {
	policy := jskema.UnknownIgnore
	if v.GetBool(keyStrict) {
		policy = jskema.UnknownStrict
	}
	return []jskema.RegistryOption{jskema.WithUnknownPolicy(policy), jskema.WithLogger(logger)}
}

func decodeOptions(v *viper.Viper) source.Options {
	return source.Options{MaxDepth: v.GetInt(keyMaxDepth)}
}

// newLogger writes console-encoded logs to stderr, or to a rotated file when
// log.file is set.
func newLogger(v *viper.Viper, stderr zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, errors.New("invalid log.level: " + v.GetString(keyLogLevel))
	}
	out := stderr
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if file := v.GetString(keyLogFile); file != "" {
		out = zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, out, level)), nil
}
