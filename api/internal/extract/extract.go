// Package extract turns a freeform bill description into discrete line items
// by way of an external language model.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Failure classes callers branch on with errors.Is. Both abort invoice
// generation; neither is retried automatically — the user re-triggers.
var (
	ErrTransport        = errors.New("extract: transport failure")
	ErrMalformedPayload = errors.New("extract: malformed payload")
)

// LineItem is one row of the bill as the model understood it.
type LineItem struct {
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Result carries the extracted items plus any data-quality warnings picked up
// while mapping the model's reply (e.g. a missing price defaulted to 0).
type Result struct {
	Items    []LineItem
	Warnings []string
}

// Extractor structures bill text. Implementations make exactly one call per
// invocation.
type Extractor interface {
	Extract(ctx context.Context, billText string) (Result, error)
}

// rawItem tolerates the two price spellings the model alternates between.
type rawItem struct {
	ItemName     string   `json:"item_name"`
	Quantity     float64  `json:"quantity"`
	Price        *float64 `json:"price"`
	PricePerItem *float64 `json:"price_per_item"`
}

// DecodeItems parses the fence-stripped JSON reply. The expected shape is a
// bare array of items; an object wrapping an "items" array is accepted too,
// since the model emits that form now and then.
func DecodeItems(payload string) (Result, error) {
	var raw []rawItem
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		var wrapped struct {
			Items []rawItem `json:"items"`
		}
		if err2 := json.Unmarshal([]byte(payload), &wrapped); err2 != nil || wrapped.Items == nil {
			return Result{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		raw = wrapped.Items
	}

	res := Result{Items: make([]LineItem, 0, len(raw))}
	for i, it := range raw {
		item := LineItem{ItemName: it.ItemName, Quantity: it.Quantity}
		switch {
		case it.Price != nil:
			item.UnitPrice = *it.Price
		case it.PricePerItem != nil:
			item.UnitPrice = *it.PricePerItem
		default:
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("item %d (%s): no price field, defaulting to 0", i+1, it.ItemName))
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}
