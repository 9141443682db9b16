// Command finskema validates finance records against the entity contracts
// and exports their JSON Schema.
//
//	finskema entities
//	finskema schema   -entity liability [-op create|update]
//	finskema validate -entity liability [-op create|update] [-format json|yaml|auto] FILE...
//
// validate exits 0 when every document passes, 1 when any fails and 2 on
// usage or decoding errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/reoring/finskema"
	"github.com/reoring/finskema/finance"
	"github.com/reoring/finskema/i18n"
	"github.com/reoring/finskema/source"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	// money in output stays numeric
	decimal.MarshalJSONWithoutQuotes = true
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "entities":
		return entitiesCmd(stdout)
	case "schema":
		return schemaCmd(args[1:], stdout, stderr)
	case "validate":
		return validateCmd(ctx, args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return exitOK
	}
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "finskema CLI\n\nUsage:\n  finskema entities\n  finskema schema -entity NAME [-op create|update]\n  finskema validate -entity NAME [-op create|update] [-format json|yaml|auto] [-workers N] [-lang en|ja] [-config FILE] FILE...\n\nWith no FILE (or \"-\"), validate reads standard input.")
}

func entitiesCmd(stdout io.Writer) int {
	for _, e := range finance.Entities() {
		s := e.Schema(finskema.OpCreate)
		var req []string
		for _, f := range s.Fields() {
			if s.IsRequired(f) {
				req = append(req, f)
			}
		}
		fmt.Fprintf(stdout, "%s\trequired: %s\n", e.Name(), strings.Join(req, ", "))
	}
	return exitOK
}

func lookup(entity, op string) (finance.Entity, finskema.Operation, error) {
	if entity == "" {
		return nil, 0, fmt.Errorf("-entity is required")
	}
	e, ok := finance.Lookup(entity)
	if !ok {
		return nil, 0, fmt.Errorf("unknown entity %q", entity)
	}
	o, ok := finskema.ParseOperation(op)
	if !ok {
		return nil, 0, fmt.Errorf("unknown op %q (want create or update)", op)
	}
	return e, o, nil
}

func schemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	entity := fs.String("entity", "", "entity name (see `finskema entities`)")
	op := fs.String("op", "create", "create or update")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	e, o, err := lookup(*entity, *op)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	js, err := e.Schema(o).JSONSchema()
	if err == nil {
		var b []byte
		if b, err = js.Marshal(); err == nil {
			_, err = fmt.Fprintln(stdout, string(b))
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	return exitOK
}

type issueOut struct {
	Path    string         `json:"path"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Rule    string         `json:"rule,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
}

type docOut struct {
	File   string         `json:"file"`
	Index  int            `json:"index"`
	OK     bool           `json:"ok"`
	Value  map[string]any `json:"value,omitempty"`
	Issues []issueOut     `json:"issues,omitempty"`
}

func validateCmd(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	entity := fs.String("entity", "", "entity name (see `finskema entities`)")
	op := fs.String("op", "create", "create or update")
	cfgFile := fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("format", "auto", "input format: json, yaml or auto")
	fs.Int("workers", 4, "concurrent validations")
	fs.String("lang", "en", "message language: en or ja")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "console", "log format: console or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(fs, *cfgFile)
	if err != nil {
		fmt.Fprintln(stderr, "error: config:", err)
		return exitUsage
	}
	log := newLogger(cfg, stderr)
	i18n.SetLanguage(cfg.GetString(keyLang))

	e, o, err := lookup(*entity, *op)
	if err != nil {
		log.Error().Err(err).Msg("usage")
		return exitUsage
	}
	format, err := source.ParseFormat(cfg.GetString(keyFormat))
	if err != nil {
		log.Error().Err(err).Msg("usage")
		return exitUsage
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	enc := json.NewEncoder(stdout)
	code := exitOK
	var total, failed int
	for _, name := range files {
		docs, err := readDocs(name, stdin, format)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("decode failed")
			return exitUsage
		}
		outcomes, err := finance.ValidateBatch(ctx, e, o, docs, cfg.GetInt(keyWorkers))
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("validation aborted")
			return exitUsage
		}
		for _, oc := range outcomes {
			total++
			rec := docOut{File: name, Index: oc.Index, OK: oc.OK(), Value: oc.Value}
			for _, it := range oc.Issues {
				rec.Issues = append(rec.Issues, issueOut{Path: it.Path, Code: it.Code, Message: it.Message, Rule: it.Rule, Params: it.Params})
			}
			if !rec.OK {
				failed++
				code = exitInvalid
			}
			if err := enc.Encode(rec); err != nil {
				log.Error().Err(err).Msg("write failed")
				return exitUsage
			}
		}
	}
	log.Info().
		Str("entity", e.Name()).
		Str("op", o.String()).
		Int("documents", total).
		Int("failed", failed).
		Msg("validation finished")
	return code
}

func readDocs(name string, stdin io.Reader, format source.Format) ([]any, error) {
	if name == "-" {
		return source.Read("", stdin, format)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return source.Read(name, f, format)
}
