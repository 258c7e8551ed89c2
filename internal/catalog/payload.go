package catalog

import (
	"bytes"
	"encoding/json"

	"storefront/internal/models"
)

// Payload is one of the product list shapes the product API has returned
// over time. DecodePayload always yields exactly one of the variants below.
type Payload interface {
	Products() []models.Product
	payload()
}

type (
	// NestedDataList is {"data": {"data": [...]}}.
	NestedDataList struct{ Items rawList }
	// NestedProductsList is {"data": {"products": [...]}}.
	NestedProductsList struct{ Items rawList }
	// ProductsList is {"products": [...]}.
	ProductsList struct{ Items rawList }
	// ResultsList is {"results": [...]}.
	ResultsList struct{ Items rawList }
	// DataList is {"data": [...]}.
	DataList struct{ Items rawList }
	// BareList is a top-level array.
	BareList struct{ Items rawList }
	// Unrecognized is any other value, including invalid JSON.
	Unrecognized struct{}
)

func (p NestedDataList) Products() []models.Product     { return p.Items.decode() }
func (p NestedProductsList) Products() []models.Product { return p.Items.decode() }
func (p ProductsList) Products() []models.Product       { return p.Items.decode() }
func (p ResultsList) Products() []models.Product        { return p.Items.decode() }
func (p DataList) Products() []models.Product           { return p.Items.decode() }
func (p BareList) Products() []models.Product           { return p.Items.decode() }
func (Unrecognized) Products() []models.Product         { return []models.Product{} }

func (NestedDataList) payload()     {}
func (NestedProductsList) payload() {}
func (ProductsList) payload()       {}
func (ResultsList) payload()        {}
func (DataList) payload()           {}
func (BareList) payload()           {}
func (Unrecognized) payload()       {}

type rawList []json.RawMessage

// decode keeps every element that is a JSON object. Anything else cannot be
// a product record and is skipped.
func (l rawList) decode() []models.Product {
	products := make([]models.Product, 0, len(l))
	for _, raw := range l {
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
			continue
		}
		if product, ok := NormalizeDocument(doc); ok {
			products = append(products, product)
		}
	}
	return products
}

// DecodePayload resolves raw into a Payload. The first matching shape wins:
// data.data, data.products, products, results, data, then a bare array.
// Only array-valued fields match.
func DecodePayload(raw []byte) Payload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Unrecognized{}
	}

	if list, ok := asList(trimmed); ok {
		return BareList{Items: list}
	}

	top, ok := asObject(trimmed)
	if !ok {
		return Unrecognized{}
	}

	if data, ok := asObject(top["data"]); ok {
		if list, ok := asList(data["data"]); ok {
			return NestedDataList{Items: list}
		}
		if list, ok := asList(data["products"]); ok {
			return NestedProductsList{Items: list}
		}
	}
	if list, ok := asList(top["products"]); ok {
		return ProductsList{Items: list}
	}
	if list, ok := asList(top["results"]); ok {
		return ResultsList{Items: list}
	}
	if list, ok := asList(top["data"]); ok {
		return DataList{Items: list}
	}

	return Unrecognized{}
}

// NormalizeProductList extracts the product records from an API response of
// any supported shape. It never fails: unknown shapes yield an empty list.
func NormalizeProductList(raw []byte) []models.Product {
	return DecodePayload(raw).Products()
}

func asList(raw json.RawMessage) (rawList, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var list rawList
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, false
	}
	return list, true
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}
