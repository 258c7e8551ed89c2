package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// CategoryRef is a category reference that is either a bare id or a
// populated object with an id and a name.
type CategoryRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (c CategoryRef) IsZero() bool {
	return c.ID == "" && c.Name == ""
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*c = CategoryRef{}
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*c = CategoryRef{ID: strings.TrimSpace(id)}
		return nil
	case strings.HasPrefix(trimmed, "{"):
		var populated struct {
			MongoID string `json:"_id"`
			ID      string `json:"id"`
			Name    string `json:"name"`
		}
		if err := json.Unmarshal(data, &populated); err != nil {
			return err
		}
		id := populated.MongoID
		if id == "" {
			id = populated.ID
		}
		*c = CategoryRef{ID: id, Name: populated.Name}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into CategoryRef", trimmed)
	}
}

func (c CategoryRef) MarshalJSON() ([]byte, error) {
	switch {
	case c.IsZero():
		return []byte("null"), nil
	case c.Name == "":
		return json.Marshal(c.ID)
	default:
		type plain CategoryRef
		return json.Marshal(plain(c))
	}
}

func (c CategoryRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch {
	case c.IsZero():
		return bson.MarshalValue(nil)
	case c.Name == "":
		return bson.MarshalValue(c.ID)
	default:
		return bson.MarshalValue(bson.M{"_id": c.ID, "name": c.Name})
	}
}
