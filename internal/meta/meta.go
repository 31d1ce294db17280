package meta

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
)

type StructMeta struct {
	Name   string
	Fields []FieldMeta
}

type FieldMeta struct {
	Index    int
	Name     string
	JSONKey  string
	Required bool
}

var cache sync.Map

func AnalyzeType(t reflect.Type) *StructMeta {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := cache.Load(t); ok {
		return cached.(*StructMeta)
	}
	m := analyze(t)
	actual, _ := cache.LoadOrStore(t, m)
	return actual.(*StructMeta)
}

func analyze(t reflect.Type) *StructMeta {
	m := &StructMeta{Name: t.Name()}
	if t.Kind() != reflect.Struct {
		return m
	}
	collectFields(t, m)
	return m
}

func collectFields(t reflect.Type, m *StructMeta) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		key, opts := parseTag(tag)
		if key == "" {
			key = toCamelCase(f.Name)
		}
		m.Fields = append(m.Fields, FieldMeta{
			Index:    i,
			Name:     f.Name,
			JSONKey:  key,
			Required: !hasOption(opts, "omitempty"),
		})
	}
}

func parseTag(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == want {
			return true
		}
	}
	return false
}

func toCamelCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	if unicode.IsLower(runes[0]) {
		return s
	}

	// find the length of the leading uppercase run
	upper := 0
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			break
		}
		upper++
	}

	// entire string is uppercase (e.g. "X", "URL")
	if upper == len(runes) {
		return strings.ToLower(s)
	}

	if upper == 1 {
		return string(unicode.ToLower(runes[0])) + string(runes[1:])
	}

	// "HTTPStatus" -> "httpStatus": the last capital starts the next word
	return strings.ToLower(string(runes[:upper-1])) + string(runes[upper-1:])
}
