package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks the config struct and overwrites any field tagged
// with `env:"NAME"` from the environment. Nested sections are walked
// recursively; untagged fields are left as loaded from file.
func applyEnvOverrides(target interface{}) error {
	val := reflect.ValueOf(target)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envName := typ.Field(i).Tag.Get("env")
		if envName == "" {
			continue
		}

		raw, ok := os.LookupEnv(envName)
		if !ok {
			continue
		}

		if err := setField(field, raw); err != nil {
			return fmt.Errorf("invalid value in %s for field %s: %w", envName, typ.Field(i).Name, err)
		}
	}

	return nil
}

// setField parses raw into the field. The config carries only string and int
// fields (durations are strings, validated at load time), so anything else in
// a tagged position is a programming error surfaced at startup.
func setField(field reflect.Value, raw string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
		return nil

	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("expected an integer: %w", err)
		}
		field.SetInt(int64(n))
		return nil

	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
}
