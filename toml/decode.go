package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses TOML data and stores the result in the value pointed to by v
func Unmarshal(data []byte, v any) error {
	parsed, err := NewParser(data).Parse()
	if err != nil {
		return err
	}
	return Decode(parsed, v)
}

// Decode maps a parsed table onto a struct or map using reflection
// Field keys come from `toml` tags, falling back to field names; unknown keys are ignored
// Booleans also accept the integers 0 and 1
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	switch val.Kind() {
	case reflect.Ptr:
		newVal := reflect.New(val.Type().Elem())
		if err := decodeValue(data, newVal.Elem()); err != nil {
			return err
		}
		val.Set(newVal)

	case reflect.Struct:
		dataMap, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table for struct, got %T", data)
		}
		return decodeStruct(dataMap, val)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only map[string]T is supported")
		}
		dataMap, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		newMap := reflect.MakeMapWithSize(val.Type(), len(dataMap))
		for k, vData := range dataMap {
			newVal := reflect.New(val.Type().Elem()).Elem()
			if err := decodeValue(vData, newVal); err != nil {
				return fmt.Errorf("map key %s: %w", k, err)
			}
			newMap.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), newVal)
		}
		val.Set(newMap)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := toFloat(data)
		if !ok {
			return fmt.Errorf("cannot convert %T to int", data)
		}
		val.SetInt(int64(f))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := toFloat(data)
		if !ok || f < 0 {
			return fmt.Errorf("cannot convert %v to uint", data)
		}
		val.SetUint(uint64(f))

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(data)
		if !ok {
			return fmt.Errorf("cannot convert %T to float", data)
		}
		val.SetFloat(f)

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", data)
		}
		val.SetString(s)

	case reflect.Bool:
		switch b := data.(type) {
		case bool:
			val.SetBool(b)
		case int:
			if b != 0 && b != 1 {
				return fmt.Errorf("cannot convert %d to bool", b)
			}
			val.SetBool(b == 1)
		default:
			return fmt.Errorf("cannot convert %T to bool", data)
		}

	default:
		return fmt.Errorf("unsupported kind %v", val.Kind())
	}

	return nil
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		fieldType := typ.Field(i)
		if fieldType.PkgPath != "" {
			continue
		}
		key, skip := fieldKey(fieldType)
		if skip {
			continue
		}
		if vData, ok := data[key]; ok {
			if err := decodeValue(vData, val.Field(i)); err != nil {
				return fmt.Errorf("%s.%s: %w", typ.Name(), fieldType.Name, err)
			}
		}
	}
	return nil
}

// fieldKey resolves the TOML key for a struct field
func fieldKey(f reflect.StructField) (key string, skip bool) {
	tag := f.Tag.Get("toml")
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name, false
	}
	return name, false
}

func toFloat(v any) (float64, bool) {
	switch i := v.(type) {
	case int:
		return float64(i), true
	case int64:
		return float64(i), true
	case float64:
		return i, true
	}
	return 0, false
}
