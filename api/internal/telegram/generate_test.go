package telegram

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbot/api/internal/deliver"
	"billbot/api/internal/extract"
	"billbot/api/internal/invoice"
	"billbot/api/internal/numword"
)

type fakeExtractor struct {
	res   extract.Result
	err   error
	calls []string
	log   *[]string
}

func (f *fakeExtractor) Extract(_ context.Context, billText string) (extract.Result, error) {
	f.calls = append(f.calls, billText)
	*f.log = append(*f.log, "extract")
	return f.res, f.err
}

type fakeRenderer struct {
	pdf  []byte
	err  error
	reqs []invoice.Request
	log  *[]string
}

func (f *fakeRenderer) Render(_ context.Context, r invoice.Request) ([]byte, error) {
	f.reqs = append(f.reqs, r)
	*f.log = append(*f.log, "render")
	return f.pdf, f.err
}

type fakeDelivery struct {
	res  deliver.Result
	err  error
	docs [][]byte
	dest []string
	log  *[]string
}

func (f *fakeDelivery) Deliver(_ context.Context, document []byte, destination string) (deliver.Result, error) {
	f.docs = append(f.docs, document)
	f.dest = append(f.dest, destination)
	*f.log = append(*f.log, "deliver")
	return f.res, f.err
}

func testSession() Session {
	return Session{
		CustomerName:   "Ali Khan",
		CustomerNumber: "+923001234567",
		BillContent:    "Shirt 6 pieces 15 100",
		Currency:       "PKR",
		Language:       numword.Urdu,
	}
}

func TestGeneratorRunHappyPath(t *testing.T) {
	var log []string
	ext := &fakeExtractor{
		res: extract.Result{Items: []extract.LineItem{{ItemName: "Shirt", Quantity: 6, UnitPrice: 1500}}},
		log: &log,
	}
	ren := &fakeRenderer{pdf: []byte("%PDF"), log: &log}
	del := &fakeDelivery{res: deliver.Result{Destination: "+923001234567"}, log: &log}

	now := time.Date(2024, time.December, 28, 10, 0, 0, 0, time.UTC)
	g := &Generator{Extractor: ext, Renderer: ren, Delivery: del, Now: func() time.Time { return now }}

	res, warnings, err := g.Run(context.Background(), testSession())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "+923001234567", res.Destination)

	// each collaborator exactly once, in pipeline order
	assert.Equal(t, []string{"extract", "render", "deliver"}, log)
	assert.Equal(t, []string{"Shirt 6 pieces 15 100"}, ext.calls)

	require.Len(t, ren.reqs, 1)
	req := ren.reqs[0]
	assert.Equal(t, "Ali Khan", req.To)
	assert.Equal(t, "INV-20241228100000", req.Number)
	assert.Equal(t, "Jan 04, 2025", req.DueDate)

	require.Len(t, del.docs, 1)
	assert.Equal(t, []byte("%PDF"), del.docs[0])
	assert.Equal(t, "+923001234567", del.dest[0])
}

func TestGeneratorRunExtractionFailureAbortsPipeline(t *testing.T) {
	var log []string
	ext := &fakeExtractor{err: fmt.Errorf("%w: boom", extract.ErrTransport), log: &log}
	ren := &fakeRenderer{log: &log}
	del := &fakeDelivery{log: &log}
	g := &Generator{Extractor: ext, Renderer: ren, Delivery: del}

	_, _, err := g.Run(context.Background(), testSession())
	assert.ErrorIs(t, err, extract.ErrTransport)
	assert.Equal(t, []string{"extract"}, log, "renderer and delivery must not run")
}

func TestGeneratorRunMalformedPayloadAbortsBeforeRender(t *testing.T) {
	var log []string
	ext := &fakeExtractor{err: fmt.Errorf("%w: bad JSON", extract.ErrMalformedPayload), log: &log}
	ren := &fakeRenderer{log: &log}
	del := &fakeDelivery{log: &log}
	g := &Generator{Extractor: ext, Renderer: ren, Delivery: del}

	_, _, err := g.Run(context.Background(), testSession())
	assert.ErrorIs(t, err, extract.ErrMalformedPayload)
	assert.Equal(t, []string{"extract"}, log)
}

func TestGeneratorRunNoItemsAbortsBeforeRender(t *testing.T) {
	var log []string
	ext := &fakeExtractor{res: extract.Result{}, log: &log}
	ren := &fakeRenderer{log: &log}
	del := &fakeDelivery{log: &log}
	g := &Generator{Extractor: ext, Renderer: ren, Delivery: del}

	_, _, err := g.Run(context.Background(), testSession())
	assert.ErrorIs(t, err, invoice.ErrNoItems)
	assert.Equal(t, []string{"extract"}, log)
}

func TestGeneratorRunRenderFailureSkipsDelivery(t *testing.T) {
	var log []string
	ext := &fakeExtractor{
		res: extract.Result{Items: []extract.LineItem{{ItemName: "Shirt", Quantity: 1, UnitPrice: 100}}},
		log: &log,
	}
	ren := &fakeRenderer{err: fmt.Errorf("render: status 500"), log: &log}
	del := &fakeDelivery{log: &log}
	g := &Generator{Extractor: ext, Renderer: ren, Delivery: del}

	_, _, err := g.Run(context.Background(), testSession())
	require.Error(t, err)
	assert.Equal(t, []string{"extract", "render"}, log)
}

func TestGeneratorRunPropagatesWarnings(t *testing.T) {
	var log []string
	ext := &fakeExtractor{
		res: extract.Result{
			Items:    []extract.LineItem{{ItemName: "Cap", Quantity: 1}},
			Warnings: []string{"item 1 (Cap): no price field, defaulting to 0"},
		},
		log: &log,
	}
	ren := &fakeRenderer{pdf: []byte("%PDF"), log: &log}
	del := &fakeDelivery{res: deliver.Result{Destination: "+923001234567"}, log: &log}
	g := &Generator{Extractor: ext, Renderer: ren, Delivery: del}

	_, warnings, err := g.Run(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Cap")
}
