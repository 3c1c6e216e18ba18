package apidocs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Swagger UI globals.
const (
	BundleGlobal     = "SwaggerUIBundle"
	StandaloneGlobal = "SwaggerUIStandalonePreset"
)

// Script is a rendered viewer initializer, it is a handle constructed by ScriptBundle.
type Script struct {
	Config Config
	Source []byte
	ETag   string
}

// ScriptBundle returns Swagger UI bundle that constructs viewer as browser initializer script.
func ScriptBundle() Bundle {
	return Bundle{
		Construct: func(cfg Config) (Handle, error) {
			return RenderScript(cfg)
		},
		APIsPreset:        Expr(BundleGlobal + ".presets.apis"),
		StandalonePreset:  Expr(StandaloneGlobal),
		DownloadURLPlugin: Expr(BundleGlobal + ".plugins.DownloadUrl"),
	}
}

// RenderScript renders initializer that mounts viewer on window load and exposes it as window.ui.
func RenderScript(cfg Config) (*Script, error) {
	b := strings.Builder{}

	b.WriteString("window.addEventListener(\"load\", function() {\n")
	b.WriteString("  window." + HandleName + " = " + BundleGlobal + "({\n")

	settings := cfg.settings()

	for i, s := range settings {
		v, err := jsValue(s.value, "    ")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.key, err)
		}

		b.WriteString("    " + s.key + ": " + v)

		if i < len(settings)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	b.WriteString("  });\n")
	b.WriteString("}, { once: true });\n")

	src := []byte(b.String())

	return &Script{
		Config: cfg,
		Source: src,
		ETag:   fmt.Sprintf(`"%016x"`, xxhash.Sum64(src)),
	}, nil
}

// jsValue renders value as JavaScript, lists are rendered one item per line under indent.
func jsValue(v interface{}, indent string) (string, error) {
	switch v := v.(type) {
	case Expr:
		return string(v), nil
	case Sequence:
		return jsList(v, indent)
	case []Ref:
		return jsList(v, indent)
	default:
		j, err := json.Marshal(v)
		if err != nil {
			return "", err
		}

		return string(j), nil
	}
}

func jsList(items []Ref, indent string) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}

	inner := indent + "  "

	values := make([]string, 0, len(items))

	for _, item := range items {
		v, err := jsValue(item, inner)
		if err != nil {
			return "", err
		}

		values = append(values, v)
	}

	return "[\n" + inner + strings.Join(values, ",\n"+inner) + "\n" + indent + "]", nil
}
