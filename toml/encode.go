package toml

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshal returns the TOML encoding of v
//
// The root must be a struct or map[string]T. Scalars are written before
// nested tables, map keys are sorted, struct fields keep declaration order.
// Nil pointers are skipped, fields tagged `omitempty` are skipped when zero.
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("marshal: cannot marshal nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct && val.Kind() != reflect.Map {
		return nil, fmt.Errorf("marshal: root must be struct or map, got %v", val.Kind())
	}

	enc := &encoder{w: new(bytes.Buffer)}
	if err := enc.encodeTable(val, ""); err != nil {
		return nil, err
	}
	return enc.w.Bytes(), nil
}

type encoder struct {
	w *bytes.Buffer
}

type entry struct {
	key string
	val reflect.Value
}

// entries lists the encodable members of a struct or map
func (e *encoder) entries(rv reflect.Value) ([]entry, error) {
	var out []entry
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key must be string, got %v", rv.Type().Key().Kind())
		}
		for _, k := range rv.MapKeys() {
			out = append(out, entry{key: k.String(), val: rv.MapIndex(k)})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	case reflect.Struct:
		typ := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			f := typ.Field(i)
			if f.PkgPath != "" {
				continue
			}
			key, skip := fieldKey(f)
			if skip {
				continue
			}
			fv := rv.Field(i)
			if strings.Contains(f.Tag.Get("toml"), ",omitempty") && fv.IsZero() {
				continue
			}
			out = append(out, entry{key: key, val: fv})
		}
	}
	return out, nil
}

func (e *encoder) encodeTable(rv reflect.Value, prefix string) error {
	entries, err := e.entries(rv)
	if err != nil {
		return err
	}

	var tables []entry
	for _, en := range entries {
		v := indirect(en.val)
		if !v.IsValid() {
			continue
		}
		if v.Kind() == reflect.Struct || v.Kind() == reflect.Map {
			tables = append(tables, entry{key: en.key, val: v})
			continue
		}
		e.writeKey(en.key)
		e.w.WriteString(" = ")
		if err := e.encodeValue(v); err != nil {
			return fmt.Errorf("key %q: %w", en.key, err)
		}
		e.w.WriteByte('\n')
	}

	for _, t := range tables {
		full := t.key
		if !isBareKey(full) {
			full = quote(full)
		}
		if prefix != "" {
			full = prefix + "." + full
		}
		e.w.WriteString("\n[" + full + "]\n")
		if err := e.encodeTable(t.val, full); err != nil {
			return err
		}
	}
	return nil
}

// indirect unwraps interfaces and pointers, returning the zero Value for nil
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func (e *encoder) encodeValue(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		e.w.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.String:
		e.w.WriteString(quote(v.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.w.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.w.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		str := strconv.FormatFloat(v.Float(), 'f', -1, 64)
		if !strings.ContainsAny(str, ".eE") {
			str += ".0"
		}
		e.w.WriteString(str)
	default:
		return fmt.Errorf("unsupported type: %v", v.Kind())
	}
	return nil
}

func (e *encoder) writeKey(key string) {
	if isBareKey(key) {
		e.w.WriteString(key)
		return
	}
	e.w.WriteString(quote(key))
}

// isBareKey reports whether key can be written unquoted and read back as the same key
func isBareKey(key string) bool {
	if key == "" || key == "true" || key == "false" {
		return false
	}
	if !isAlpha(rune(key[0])) && key[0] != '_' {
		return false
	}
	for _, r := range key {
		if !isAlpha(r) && !isDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

// quote writes a basic string using only the escapes the lexer reads back
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
