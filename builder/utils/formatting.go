package utils

import (
	"fmt"
	"strings"
	"time"
)

// GetString returns a front matter value as text. Dates decoded by YAML are
// formatted back to RFC 3339.
func GetString(m map[string]interface{}, k string) string {
	v, ok := m[k]
	if !ok || v == nil {
		return ""
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// GetStringList accepts a YAML list or a comma separated string. Blank and
// repeated entries (case-insensitive) are dropped, the first spelling wins.
func GetStringList(m map[string]interface{}, k string) []string {
	var raw []string
	switch v := m[k].(type) {
	case []interface{}:
		for _, i := range v {
			if i != nil {
				raw = append(raw, fmt.Sprintf("%v", i))
			}
		}
	case []string:
		raw = v
	case string:
		raw = strings.Split(v, ",")
	}

	var res []string
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, s)
	}
	return res
}

func GetBool(m map[string]interface{}, k string) bool {
	if v, ok := m[k]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
