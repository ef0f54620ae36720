package deliver

import "context"

// FileHost and Messenger are the two collaborators the pipeline drives.
type FileHost interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type Messenger interface {
	Send(ctx context.Context, to, mediaURL string) error
}

// Result reports a completed delivery.
type Result struct {
	Destination string
	MediaURL    string
}

type Pipeline struct {
	Host FileHost
	Msg  Messenger
}

// Deliver uploads the document and sends the link to the destination.
// The first failing step aborts the rest.
func (p *Pipeline) Deliver(ctx context.Context, document []byte, destination string) (Result, error) {
	link, err := p.Host.Upload(ctx, "invoice.pdf", document)
	if err != nil {
		return Result{}, err
	}
	if err := p.Msg.Send(ctx, destination, link); err != nil {
		return Result{}, err
	}
	return Result{Destination: destination, MediaURL: link}, nil
}
