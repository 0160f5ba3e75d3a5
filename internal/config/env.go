package config

import (
	"fmt"
	"os"
	"reflect"
)

// processStructFields walks through struct fields to override config with env
// vars named in `env` tags. Nested structs are processed recursively.
func processStructFields(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if field.Kind() != reflect.String || !field.CanSet() {
			return fmt.Errorf("cannot set field %s from env var %s", fieldType.Name, envTag)
		}
		field.SetString(envValue)
	}

	return nil
}
