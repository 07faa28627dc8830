// Package parameters handles simulation configuration given as a map[string]string,
// typically parsed from a user's "key=value,key=value" string.
package parameters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// Parse creates Params from a configuration string like "size=64,rule=canonical".
//
// Spaces around keys and values are trimmed, empty entries are skipped and a key without a
// value maps to "" (interpreted as true for bool lookups).
func Parse(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Only the first '=' splits, values may contain '='.
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// Keys returns the sorted keys present in params.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// String renders params back into the "key=value" form accepted by Parse, sorted by key.
func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for _, key := range p.Keys() {
		if p[key] == "" {
			parts = append(parts, key)
			continue
		}
		parts = append(parts, key+"="+p[key])
	}
	return strings.Join(parts, ",")
}

// PopParamOr is like GetParamOr, but it also deletes the retrieved parameter from params.
// It is used to detect unknown leftover keys after all known ones were consumed.
func PopParamOr[T interface {
	bool | int | int64 | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the
// defaultValue if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T interface {
	bool | int | int64 | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	var t T
	toT := func(v any) T { return v.(T) }
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	switch any(defaultValue).(type) {
	case string:
		return toT(value), nil
	case int:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		return toT(parsed), nil
	case int64:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int64", key, value)
		}
		return toT(parsed), nil
	case float64:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		return toT(parsed), nil
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1": // Empty value is considered "true".
			return toT(true), nil
		case "false", "0":
			return toT(false), nil
		}
		return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
	}
	return defaultValue, nil
}

// Format renders a value in the form GetParamOr parses back.
func Format[T interface {
	bool | int | int64 | float64 | string
}](value T) string {
	switch v := any(value).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
