// Package feed streams game-state records from an ND-JSON event feed.
//
// The feed splits the stream on newlines and hands the caller one record
// buffer at a time. The buffer is reused between records, which is what
// the chunk parser's input contract expects: the parser may mutate the
// buffer freely, and every view it produces dies when the next record
// arrives.
package feed

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lgbarn/lichess-tv-go/internal/config"
	"github.com/lgbarn/lichess-tv-go/internal/errors"
)

// initialBufSize is the scanner's starting buffer; it grows on demand up
// to the configured maximum record size.
const initialBufSize = 4 * 1024

// Handler is invoked once per record. The buffer is mutable and valid
// only until the handler returns.
type Handler func(buf []byte)

// Feed reads records from a streaming HTTP endpoint.
type Feed struct {
	url           string
	maxRecordSize int
	client        *http.Client
	log           io.Writer
}

// New creates a feed from the given configuration.
func New(cfg *config.Config) *Feed {
	return &Feed{
		url:           cfg.FeedURL,
		maxRecordSize: cfg.MaxRecordSize,
		client: &http.Client{
			// No overall client timeout: the response body is an
			// open-ended stream. Only the connect phase is bounded.
			Transport: &http.Transport{
				ResponseHeaderTimeout: cfg.ConnectTimeout,
			},
		},
		log: cfg.LogFile,
	}
}

// Run connects to the feed URL and streams records into fn until the
// stream ends or ctx is canceled. A clean end of stream is reported as
// ErrFeedClosed.
func (f *Feed) Run(ctx context.Context, fn Handler) error {
	body, err := f.connect(ctx)
	if err != nil {
		return err
	}
	defer body.Close()
	return f.stream(ctx, body, fn)
}

// connect opens the streaming HTTP connection.
func (f *Feed) connect(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building feed request")
	}
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &errors.StreamError{Err: err, URL: f.url}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &errors.StreamError{
			Err: fmt.Errorf("unexpected status %s", resp.Status),
			URL: f.url,
		}
	}
	return resp.Body, nil
}

// stream delivers newline-delimited records from r to fn. Empty lines
// are skipped. Cancellation is observed between records; an in-flight
// read is interrupted by the request context closing the body.
func (f *Feed) stream(ctx context.Context, r io.Reader, fn Handler) error {
	sc := bufio.NewScanner(r)
	// The scanner treats the larger of cap(buf) and the max as its token
	// limit, so the initial buffer must not exceed the configured maximum.
	bufSize := initialBufSize
	if f.maxRecordSize < bufSize {
		bufSize = f.maxRecordSize
	}
	sc.Buffer(make([]byte, bufSize), f.maxRecordSize)

	records := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		fn(line)
		records++
	}

	if err := sc.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if stderrors.Is(err, bufio.ErrTooLong) {
			err = errors.Wrapf(errors.ErrRecordTooLarge, "limit %d bytes", f.maxRecordSize)
		}
		return &errors.StreamError{Err: err, URL: f.url, Records: records}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.ErrFeedClosed
}
