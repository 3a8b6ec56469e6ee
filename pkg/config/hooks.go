package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/photosort/pkg/replicator"
	"github.com/arthur-debert/photosort/pkg/template"
)

var (
	templateType = reflect.TypeOf(template.Template{})
	kindType     = reflect.TypeOf(replicator.Kind(0))
	byteType     = reflect.TypeOf(byte(0))
)

// stringToSliceHookFunc splits a comma separated string into its trimmed
// elements for any slice target, so env values such as "copy,hardlink"
// reach the element hooks one name at a time.
func stringToSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem() == byteType {
			return data, nil
		}
		raw := data.(string)
		if strings.TrimSpace(raw) == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, sep)
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts, nil
	}
}

// stringToTemplateHookFunc parses template strings. Parse errors surface
// from Load, before any file is touched.
func stringToTemplateHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != templateType {
			return data, nil
		}
		tmpl, err := template.Parse(data.(string))
		if err != nil {
			return nil, err
		}
		return *tmpl, nil
	}
}

func stringToKindHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != kindType {
			return data, nil
		}
		return replicator.ParseKind(data.(string))
	}
}
