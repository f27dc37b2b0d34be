package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of the struct fields of filter whose "form"
// parameter is set in the query string of url. Zero values can be filtered
// for that way without using pointer fields.
//
// Fields of embedded structs are included.
func GetURLFields(url *url.URL, filter any) []string {
	return urlFields(url.Query(), reflect.Indirect(reflect.ValueOf(filter)))
}

func urlFields(query url.Values, val reflect.Value) []string {
	var setFields []string

	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			setFields = append(setFields, urlFields(query, val.Field(i))...)
			continue
		}

		param := field.Tag.Get("form")
		if param != "" && query.Has(param) {
			setFields = append(setFields, field.Name)
		}
	}

	return setFields
}
