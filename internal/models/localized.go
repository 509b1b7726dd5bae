package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalizedText maps a language code to a translated string. Not every
// language needs a value; Resolve falls back to the provided default.
type LocalizedText map[string]string

// Resolve returns the translation for lang, falling back to fallbackLang,
// then to any non-empty value, then to the empty string.
func (t LocalizedText) Resolve(lang, fallbackLang string) string {
	if len(t) == 0 {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[fallbackLang]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// Value implements driver.Valuer, storing the map as JSONB.
func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB columns.
func (t *LocalizedText) Scan(src interface{}) error {
	return scanJSON(src, t, "LocalizedText")
}

func scanJSON(src, dst interface{}, kind string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("models: cannot scan %T into %s", src, kind)
	}
}
