// Package rulesource loads the statute rule table once at startup, from a
// remote document, a local YAML/JSON file or the built-in defaults.
package rulesource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"familaw-engine/internal/statutes"
)

// Source names where the active table came from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceFile    Source = "file"
	SourceRemote  Source = "remote"
)

const defaultTimeout = 2 * time.Second

type Options struct {
	// URL is fetched with GET when set. A failed fetch falls back to the
	// built-in table.
	URL string
	// Path is a JSONPath selecting the table inside the remote document.
	Path string
	// File is a YAML or JSON table read when URL is empty.
	File    string
	Timeout time.Duration
	Client  *http.Client
}

// Result carries the loaded table. Fallback holds the remote failure when the
// built-in table was used instead.
type Result struct {
	Table    *statutes.Table
	Source   Source
	Fallback error
}

// Load resolves the rule table. Fields absent from a file or remote document
// keep their built-in values; the merged table must pass Validate.
func Load(ctx context.Context, opts Options) (*Result, error) {
	switch {
	case opts.URL != "":
		t, err := fetch(ctx, opts)
		if err != nil {
			return &Result{Table: statutes.Default(), Source: SourceBuiltin, Fallback: err}, nil
		}
		return &Result{Table: t, Source: SourceRemote}, nil
	case opts.File != "":
		t, err := readFile(opts.File)
		if err != nil {
			return nil, err
		}
		return &Result{Table: t, Source: SourceFile}, nil
	default:
		return &Result{Table: statutes.Default(), Source: SourceBuiltin}, nil
	}
}

func readFile(path string) (*statutes.Table, error) {
	k := koanf.New(".")
	// JSON documents parse as YAML too.
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadRules, path, err)
	}

	t := statutes.Default()
	clearSupplied(t, k.Exists)
	if err := k.UnmarshalWithConf("", t, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadRules, path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRules, path, err)
	}
	return t, nil
}

func fetch(ctx context.Context, opts Options) (*statutes.Table, error) {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRules, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRules, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s returned %d", ErrLoadRules, opts.URL, resp.StatusCode)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoadRules, err)
	}
	return fromDocument(doc, opts.Path)
}

// fromDocument selects path in doc and decodes the match over the defaults.
func fromDocument(doc any, path string) (*statutes.Table, error) {
	if path == "" {
		path = "$"
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: select %q: %w", ErrLoadRules, path, err)
	}
	// wildcard and filter expressions return a list; the first match wins
	if list, ok := selected.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %q matched nothing", ErrLoadRules, path)
		}
		selected = list[0]
	}
	obj, ok := selected.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not select an object", ErrInvalidRules, path)
	}

	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRules, err)
	}
	t := statutes.Default()
	clearSupplied(t, func(key string) bool { return hasKey(obj, key) })
	if err := json.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	return t, nil
}

// clearSupplied empties the built-in lists and the fallback bracket when the
// document provides its own, so decoding replaces them instead of merging
// entries by position.
func clearSupplied(t *statutes.Table, has func(key string) bool) {
	cs := &t.ChildSupport
	if has("child_support.brackets") {
		cs.Brackets = nil
	}
	if has("child_support.fallback") {
		cs.Fallback = statutes.Bracket{}
	}
	if has("child_support.basic_obligations") {
		cs.BasicObligations = nil
	}
	if has("child_support.deviation_factors") {
		cs.DeviationFactors = nil
	}
	if has("parenting_time.best_interests_factors") {
		t.ParentingTime.BestInterestsFactors = nil
	}
}

// hasKey reports whether the dotted key path exists in m.
func hasKey(m map[string]any, key string) bool {
	var cur any = m
	for _, part := range strings.Split(key, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		if cur, ok = obj[part]; !ok {
			return false
		}
	}
	return true
}
