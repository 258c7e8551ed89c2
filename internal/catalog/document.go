package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

var (
	productFloatFields  = []string{"price", "originalPrice", "defaultPrice", "minPrice", "maxPrice", "salePercentage", "rating", "averageRating"}
	productIntFields    = []string{"stock", "totalStock", "totalSold"}
	productBoolFields   = []string{"isDeleted", "isDeletedByAdmin", "isDeletedBySeller", "isEazShopProduct", "isOnSale"}
	productStringFields = []string{"name", "slug", "status", "moderationStatus", "promotionKey", "imageCover", "sku", "categoryId", "subCategoryId"}
	productDateFields   = []string{"createdAt", "promotionEndDate"}
	productRefFields    = []string{"category", "parentCategory", "subCategory"}
)

// NormalizeDocument coerces a loosely typed product document (decoded from
// JSON or BSON) into a Product. Field types that drifted upstream are
// repaired; values that cannot be repaired are dropped. ok is false only when
// the coerced document still cannot be decoded.
func NormalizeDocument(doc map[string]any) (models.Product, bool) {
	raw, _ := plainValue(doc).(map[string]any)
	if raw == nil {
		return models.Product{}, false
	}

	normalizeID(raw)

	for _, key := range productFloatFields {
		coerceFloat(raw, key)
	}
	for _, key := range productIntFields {
		coerceInt(raw, key)
	}
	for _, key := range productBoolFields {
		coerceBool(raw, key)
	}
	for _, key := range productStringFields {
		coerceString(raw, key)
	}
	for _, key := range productDateFields {
		coerceDate(raw, key)
	}
	for _, key := range productRefFields {
		coerceRef(raw, key)
	}
	coerceStringList(raw, "images")

	if availability, ok := raw["availability"].(map[string]any); ok {
		coerceDate(availability, "startDate")
		coerceDate(availability, "endDate")
	} else {
		delete(raw, "availability")
	}

	if list, ok := raw["variants"].([]any); ok {
		variants := make([]any, 0, len(list))
		for _, item := range list {
			if variant, ok := item.(map[string]any); ok {
				variants = append(variants, normalizeVariantDocument(variant))
			}
		}
		raw["variants"] = variants
	}
	dropEmptyList(raw, "variants")

	data, err := json.Marshal(raw)
	if err != nil {
		return models.Product{}, false
	}

	var p models.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Product{}, false
	}

	return p, true
}

func normalizeVariantDocument(raw map[string]any) map[string]any {
	normalizeID(raw)
	coerceString(raw, "sku")
	coerceString(raw, "name")
	coerceString(raw, "status")
	coerceFloat(raw, "price")
	coerceFloat(raw, "originalPrice")
	coerceInt(raw, "stock")
	if _, ok := raw["stock"]; !ok {
		raw["stock"] = 0
	}
	coerceStringList(raw, "images")

	if list, ok := raw["attributes"].([]any); ok {
		attrs := make([]any, 0, len(list))
		for _, item := range list {
			attr, ok := item.(map[string]any)
			if !ok {
				continue
			}
			key, _ := scalarString(attr["key"])
			value, _ := scalarString(attr["value"])
			if key == "" {
				continue
			}
			attrs = append(attrs, map[string]any{"key": key, "value": value})
		}
		raw["attributes"] = attrs
	}
	dropEmptyList(raw, "attributes")

	return raw
}

// normalizeID folds the "id" alias into "_id" as a string.
func normalizeID(raw map[string]any) {
	id, _ := scalarString(raw["_id"])
	if id == "" {
		id, _ = scalarString(raw["id"])
	}
	delete(raw, "id")
	if id == "" {
		delete(raw, "_id")
		return
	}
	raw["_id"] = id
}

// plainValue converts BSON container and scalar types into the plain Go
// values encoding/json understands.
func plainValue(v any) any {
	switch typed := v.(type) {
	case primitive.D:
		out := make(map[string]any, len(typed))
		for _, elem := range typed {
			out[elem.Key] = plainValue(elem.Value)
		}
		return out
	case primitive.M:
		return plainMap(typed)
	case map[string]any:
		return plainMap(typed)
	case primitive.A:
		return plainList(typed)
	case []any:
		return plainList(typed)
	case primitive.ObjectID:
		return typed.Hex()
	case primitive.DateTime:
		return typed.Time().UTC()
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil
		}
		return typed
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(typed.String(), 64); err == nil {
			return f
		}
		return nil
	default:
		return v
	}
}

func plainMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = plainValue(value)
	}
	return out
}

func plainList(in []any) []any {
	out := make([]any, len(in))
	for i, value := range in {
		out[i] = plainValue(value)
	}
	return out
}

func coerceFloat(raw map[string]any, key string) {
	value, ok := raw[key]
	if !ok {
		return
	}
	if f, ok := toFloat(value); ok {
		raw[key] = f
		return
	}
	delete(raw, key)
}

func coerceInt(raw map[string]any, key string) {
	value, ok := raw[key]
	if !ok {
		return
	}
	if f, ok := toFloat(value); ok {
		raw[key] = int(f)
		return
	}
	delete(raw, key)
}

func coerceBool(raw map[string]any, key string) {
	value, ok := raw[key]
	if !ok {
		return
	}
	switch typed := value.(type) {
	case bool:
		// already bool, keep as is
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			delete(raw, key)
			return
		}
		raw[key] = parsed
	default:
		delete(raw, key)
	}
}

func coerceString(raw map[string]any, key string) {
	value, ok := raw[key]
	if !ok {
		return
	}
	if s, ok := scalarString(value); ok {
		raw[key] = s
		return
	}
	delete(raw, key)
}

func coerceDate(raw map[string]any, key string) {
	switch typed := raw[key].(type) {
	case nil:
		delete(raw, key)
	case string:
	case time.Time:
		raw[key] = typed.Format(time.RFC3339Nano)
	default:
		if f, ok := toFloat(typed); ok {
			raw[key] = f
			return
		}
		delete(raw, key)
	}
}

func coerceRef(raw map[string]any, key string) {
	switch typed := raw[key].(type) {
	case nil:
		delete(raw, key)
	case map[string]any:
		id, _ := scalarString(typed["_id"])
		if id == "" {
			id, _ = scalarString(typed["id"])
		}
		name, _ := scalarString(typed["name"])
		raw[key] = map[string]any{"_id": id, "name": name}
	default:
		if s, ok := scalarString(typed); ok {
			raw[key] = s
			return
		}
		delete(raw, key)
	}
}

func coerceStringList(raw map[string]any, key string) {
	switch typed := raw[key].(type) {
	case string:
		if strings.TrimSpace(typed) == "" {
			delete(raw, key)
			return
		}
		raw[key] = []any{typed}
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		raw[key] = out
	default:
		delete(raw, key)
		return
	}
	dropEmptyList(raw, key)
}

// dropEmptyList removes empty arrays so that "absent" and "empty" decode to
// the same nil slice.
func dropEmptyList(raw map[string]any, key string) {
	if list, ok := raw[key].([]any); ok && len(list) == 0 {
		delete(raw, key)
	}
}

func scalarString(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case int, int32, int64:
		f, _ := toFloat(typed)
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return "", false
	}
}

func toFloat(value any) (float64, bool) {
	var f float64
	switch typed := value.(type) {
	case float64:
		f = typed
	case float32:
		f = float64(typed)
	case int:
		f = float64(typed)
	case int32:
		f = float64(typed)
	case int64:
		f = float64(typed)
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
