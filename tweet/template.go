package tweet

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Input is the payload sent to a model: the rendered template document minus
// its type field.
type Input map[string]any

// A Selection records which fragment was chosen for each placeholder during a
// run. A placeholder drawn more than once keeps its most recent choice.
type Selection map[string]string

// Template types. A text template drives the text model, an image template
// drives the image model.
const (
	TypeText  = "text"
	TypeImage = "image"
)

const (
	madlibPrefix = "madlib"
	varPrefix    = "var"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^}:]+):([^}]+)\}`)

// A Template is a prompt document loaded from JSON. String fields anywhere in
// the document may reference madlib fragments with ${madlib:name} and runtime
// variables with ${var:name}.
type Template struct {
	typ    string
	fields map[string]any
}

// LoadTemplate reads a JSON template document from path. The document must be
// an object with a type field of "text" or "image".
func LoadTemplate(path string) (*Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("expected a JSON object: %w", err)}
	}
	typ, _ := fields["type"].(string)
	if typ != TypeText && typ != TypeImage {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("unsupported template type %q", typ)}
	}
	delete(fields, "type")
	return &Template{typ: typ, fields: fields}, nil
}

// Type reports whether the template targets the text or the image model.
func (t *Template) Type() string { return t.typ }

// Render substitutes every placeholder in the document and returns the model
// input payload. Madlib placeholders draw one candidate uniformly from lib
// using rng, independently per occurrence, and every draw is recorded in sel.
// Fields resolve in sorted key order, at every nesting level, so a seeded
// render always draws fragments in the same sequence. Rendering is
// all-or-nothing: an unresolvable placeholder aborts the render and no
// payload is returned.
func (t *Template) Render(lib *Library, vars map[string]string, rng *rand.Rand, sel Selection) (Input, error) {
	out := make(Input, len(t.fields))
	for _, k := range sortedKeys(t.fields) {
		r, err := resolveValue(t.fields[k], lib, vars, rng, sel)
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}

func resolveValue(v any, lib *Library, vars map[string]string, rng *rand.Rand, sel Selection) (any, error) {
	switch v := v.(type) {
	case string:
		return resolveString(v, lib, vars, rng, sel)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			r, err := resolveValue(item, lib, vars, rng, sel)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for _, k := range sortedKeys(v) {
			r, err := resolveValue(v[k], lib, vars, rng, sel)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func resolveString(s string, lib *Library, vars map[string]string, rng *rand.Rand, sel Selection) (string, error) {
	var resolveErr error
	out := placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		if resolveErr != nil {
			return m
		}
		parts := placeholderPattern.FindStringSubmatch(m)
		prefix, key := parts[1], parts[2]
		switch prefix {
		case madlibPrefix:
			fragments, ok := lib.Fragments(key)
			if !ok {
				resolveErr = &TemplateError{Placeholder: key, Reason: "no such fragment set"}
				return m
			}
			chosen := fragments[rng.Intn(len(fragments))]
			sel[key] = chosen
			return chosen
		case varPrefix:
			val, ok := vars[key]
			if !ok {
				resolveErr = &TemplateError{Placeholder: key, Reason: "missing runtime variable"}
				return m
			}
			return val
		default:
			resolveErr = &TemplateError{Placeholder: prefix + ":" + key, Reason: "unsupported placeholder prefix"}
			return m
		}
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return out, nil
}

// Filenames expected under the prompts directory.
const (
	tweetTemplateFile       = "gen-text-tweet.json"
	imagePromptTemplateFile = "gen-text-imageprompt.json"
	imageTemplateFile       = "gen-image-tweet.json"
	madlibSubdir            = "madlib"
)

// Templates groups the three prompt documents a run renders, in render order.
type Templates struct {
	Tweet       *Template
	ImagePrompt *Template
	Image       *Template
}

// LoadPrompts loads the three template documents and the madlib library from
// the prompts directory.
func LoadPrompts(dir string) (Templates, *Library, error) {
	lib, err := LoadLibrary(filepath.Join(dir, madlibSubdir))
	if err != nil {
		return Templates{}, nil, err
	}
	tmpls := Templates{}
	for _, t := range []struct {
		file string
		typ  string
		dst  **Template
	}{
		{tweetTemplateFile, TypeText, &tmpls.Tweet},
		{imagePromptTemplateFile, TypeText, &tmpls.ImagePrompt},
		{imageTemplateFile, TypeImage, &tmpls.Image},
	} {
		path := filepath.Join(dir, t.file)
		tmpl, err := LoadTemplate(path)
		if err != nil {
			return Templates{}, nil, err
		}
		if tmpl.Type() != t.typ {
			return Templates{}, nil, &ConfigError{Path: path, Err: fmt.Errorf("expected a %q template, got %q", t.typ, tmpl.Type())}
		}
		*t.dst = tmpl
	}
	return tmpls, lib, nil
}
