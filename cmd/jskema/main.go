package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/i18n"
	"github.com/reoring/jskema/keywords"
	"github.com/reoring/jskema/source"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdout, stderr)
	case "describe":
		return describeCmd(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "jskema CLI\n\nUsage:\n  jskema validate -schema schema.json instance.json [instance.yaml ...]\n  jskema describe -schema schema.json\n\nCommon flags: -config file, -strict, -max-errors N, -max-depth N, -lang tag, -log-level level, -log-file path\nEnvironment: JSKEMA_STRICT, JSKEMA_MAX_ERRORS, JSKEMA_LANG, JSKEMA_LOG_LEVEL, ...")
}

// env is the per-invocation state shared by subcommands.
type env struct {
	schema *jskema.Schema
	decode source.Options
	maxErr int
	logger *zap.Logger
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	schema := fs.String("schema", "", "schema file (.json, .yaml or .yml)")
	fs.String(keyConfig, "", "config file")
	fs.Bool(keyStrict, false, "reject unknown keywords")
	fs.Int(keyMaxErrors, 0, "errors reported per instance (0 = all)")
	fs.Int(keyMaxDepth, 0, "maximum document nesting depth (0 = unbounded)")
	fs.String(keyLang, "en", "message language")
	fs.String("log-level", "warn", "log level")
	fs.String("log-file", "", "log file (rotated); stderr when empty")
	return fs, schema
}

// setup parses flags, loads config, and compiles the schema.
func setup(name string, args []string, stderr io.Writer) (*env, *flag.FlagSet, int) {
	fs, schemaPath := newFlagSet(name, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, exitUsage
	}
	if *schemaPath == "" {
		fs.Usage()
		return nil, nil, exitUsage
	}
	v, err := loadConfig(fs)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return nil, nil, exitUsage
	}
	logger, err := newLogger(v, zapcore.AddSync(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return nil, nil, exitUsage
	}
	i18n.SetLanguage(v.GetString(keyLang))

	decode := decodeOptions(v)
	doc, err := source.Load(*schemaPath, decode)
	if err != nil {
		logger.Error("loading schema", zap.String("path", *schemaPath), zap.Error(err))
		fmt.Fprintf(stderr, "schema: %v\n", err)
		return nil, nil, exitUsage
	}
	schema, err := keywords.Compile(doc, registryOptions(v, logger)...)
	if err != nil {
		var se *jskema.SchemaError
		if errors.As(err, &se) {
			logger.Error("compiling schema", zap.String("keyword", se.Keyword), zap.String("location", se.Location), zap.Error(err))
		}
		fmt.Fprintf(stderr, "schema: %v\n", err)
		return nil, nil, exitUsage
	}
	return &env{schema: schema, decode: decode, maxErr: v.GetInt(keyMaxErrors), logger: logger}, fs, exitOK
}

func validateCmd(args []string, stdout, stderr io.Writer) int {
	e, fs, code := setup("validate", args, stderr)
	if e == nil {
		return code
	}
	defer func() { _ = e.logger.Sync() }()
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "validate: no instance files")
		return exitUsage
	}

	exit := exitOK
	for _, path := range fs.Args() {
		inst, err := source.Load(path, e.decode)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			exit = exitInvalid
			continue
		}
		if e.schema.IsValid(inst) {
			e.logger.Debug("instance valid", zap.String("path", path))
			fmt.Fprintf(stdout, "%s: ok\n", path)
			continue
		}
		exit = exitInvalid
		es := e.schema.Validate(inst).CollectN(e.maxErr)
		e.logger.Info("instance invalid", zap.String("path", path), zap.Int("errors", len(es)))
		for _, ve := range es {
			fmt.Fprintf(stdout, "%s: %s %s: %s\n", path, ve.Pointer(), ve.Keyword, ve.Message())
		}
	}
	return exit
}

func describeCmd(args []string, stdout, stderr io.Writer) int {
	e, _, code := setup("describe", args, stderr)
	if e == nil {
		return code
	}
	defer func() { _ = e.logger.Sync() }()
	fmt.Fprintln(stdout, e.schema.String())
	return exitOK
}
