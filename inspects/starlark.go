package inspects

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/starlarkutil"
	"github.com/shopspring/decimal"
	"go.starlark.net/starlark"
)

// ToStarlark converts Go values to starlark values.
// Structs become dicts keyed by snake_case field names, with the type name under "kind".
func ToStarlark(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None
	case starlark.Value:
		return v

	case ginlang.Pos:
		return starlark.String(v.String())
	case decimal.Decimal:
		return starlark.Float(v.InexactFloat64())
	case error:
		return starlark.String(v.Error())

	case bool:
		return starlark.Bool(v)
	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// enums
		if stringer, ok := v.(fmt.Stringer); ok {
			return starlark.String(stringer.String())
		}
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if stringer, ok := v.(fmt.Stringer); ok {
			return starlark.String(stringer.String())
		}
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			if err := d.SetKey(
				ToStarlark(iter.Key().Interface()),
				ToStarlark(iter.Value().Interface()),
			); err != nil {
				panic(err)
			}
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField() + 1)
		set := func(key string, v starlark.Value) {
			if err := d.SetKey(starlark.String(key), v); err != nil {
				panic(err)
			}
		}
		set("kind", starlark.String(snakeCase(typ.Name())))
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			set(snakeCase(field.Name), ToStarlark(value.Field(i).Interface()))
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return ToStarlark(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// acronyms stay together, as in DepIDs
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				i+1 < len(runes) && unicode.IsLower(runes[i+1]) && runes[i+1] != 's') {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
