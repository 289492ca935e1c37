package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
)

// Validator 需要自定义校验（或补齐默认值）的内容或条目
type Validator interface {
	Validate() error
}

// StringField 遍历到的字符串字段
type StringField struct {
	Path     string
	RichText bool
	MaxLen   int
}

// StringVisitor 返回新值替换原字段
type StringVisitor func(f StringField, value string) (string, error)

// WalkStrings 深度遍历 v 中所有导出的字符串字段，包括嵌入结构体和条目切片
func WalkStrings(v any, visit StringVisitor) error {
	return walkValue(reflect.ValueOf(v), "", visit, false)
}

// ValidateContent 校验字段长度，并调用内容及条目上的 Validate
func ValidateContent(c Content) error {
	return walkValue(reflect.ValueOf(c), "", func(f StringField, s string) (string, error) {
		if f.MaxLen > 0 && utf8.RuneCountInString(s) > f.MaxLen {
			return s, fmt.Errorf("%w: %s 最多 %d 个字符", constant.ErrFieldTooLong, f.Path, f.MaxLen)
		}
		return s, nil
	}, true)
}

// TransformRichText 对所有非空富文本字段应用 fn
func TransformRichText(c Content, fn func(string) (string, error)) error {
	return WalkStrings(c, func(f StringField, s string) (string, error) {
		if !f.RichText || s == "" {
			return s, nil
		}
		return fn(s)
	})
}

func walkValue(v reflect.Value, path string, visit StringVisitor, validate bool) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return walkValue(v.Elem(), path, visit, validate)
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := walkValue(v.Index(i), path+"["+strconv.Itoa(i)+"]", visit, validate); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
	default:
		return nil
	}

	if validate && v.CanAddr() {
		if val, ok := v.Addr().Interface().(Validator); ok {
			if err := val.Validate(); err != nil {
				if path == "" {
					return err
				}
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		fieldPath := path
		if !sf.Anonymous {
			fieldPath = joinPath(path, fieldName(sf))
		}
		if fv.Kind() != reflect.String {
			if err := walkValue(fv, fieldPath, visit, validate); err != nil {
				return err
			}
			continue
		}
		f := StringField{Path: fieldPath, RichText: sf.Tag.Get("richtext") == "true"}
		if n, err := strconv.Atoi(sf.Tag.Get("maxlen")); err == nil {
			f.MaxLen = n
		}
		out, err := visit(f, fv.String())
		if err != nil {
			return err
		}
		if out != fv.String() && fv.CanSet() {
			fv.SetString(out)
		}
	}
	return nil
}

func fieldName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(sf.Name)
	}
	return name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
