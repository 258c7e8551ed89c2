package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// StringList ensures image fields can be decoded whether sent as a single
// string or an array of strings. Stored documents reach it through JSON after
// catalog normalization.
type StringList []string

// MarshalBSONValue always stores the list as an array, keeping new writes
// consistent even when legacy documents used a string value.
func (s StringList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]string(s))
}

// UnmarshalJSON accepts a single string or an array of strings.
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*s = nil
		return nil
	case strings.HasPrefix(trimmed, "["):
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*s = compact(values)
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = fromSingle(value)
		return nil
	default:
		return fmt.Errorf("cannot decode %s into StringList", trimmed)
	}
}

func fromSingle(value string) StringList {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return StringList{trimmed}
}

func compact(values []string) StringList {
	var out StringList
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
