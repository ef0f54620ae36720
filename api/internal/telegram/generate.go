package telegram

import (
	"context"
	"time"

	"billbot/api/internal/deliver"
	"billbot/api/internal/extract"
	"billbot/api/internal/invoice"
)

// Renderer and Deliverer mirror the two downstream collaborators so the
// generation flow can be exercised without the network.
type Renderer interface {
	Render(ctx context.Context, r invoice.Request) ([]byte, error)
}

type Deliverer interface {
	Deliver(ctx context.Context, document []byte, destination string) (deliver.Result, error)
}

// Generator runs one generate-and-send action: structure the bill text,
// build the render request, render the PDF, deliver it. Each collaborator is
// invoked at most once; the first failure aborts the rest. There is exactly
// one outcome per trigger — a sent invoice or a single error.
type Generator struct {
	Extractor extract.Extractor
	Renderer  Renderer
	Delivery  Deliverer

	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func (g *Generator) Run(ctx context.Context, s Session) (deliver.Result, []string, error) {
	res, err := g.Extractor.Extract(ctx, s.BillContent)
	if err != nil {
		return deliver.Result{}, nil, err
	}

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	req, err := invoice.Build(s.CustomerName, s.CustomerNumber, res.Items, s.Currency, now)
	if err != nil {
		return deliver.Result{}, res.Warnings, err
	}

	pdf, err := g.Renderer.Render(ctx, req)
	if err != nil {
		return deliver.Result{}, res.Warnings, err
	}

	out, err := g.Delivery.Deliver(ctx, pdf, s.CustomerNumber)
	if err != nil {
		return deliver.Result{}, res.Warnings, err
	}
	return out, res.Warnings, nil
}
