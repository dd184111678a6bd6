package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ResumeFetcher retrieves a resume document by URL and returns its raw
// text. Fetching is a single bounded-wait request; failures surface to the
// caller without retries.
type ResumeFetcher interface {
	Fetch(ctx context.Context, resumeURL string) (string, error)
}

type resumeFetcher struct {
	client    *http.Client
	maxSize   int64
	pdfParser PDFParserService
}

func NewResumeFetcher(timeout time.Duration, maxSize int64, pdfParser PDFParserService) ResumeFetcher {
	return &resumeFetcher{
		client:    &http.Client{Timeout: timeout},
		maxSize:   maxSize,
		pdfParser: pdfParser,
	}
}

var pdfMagic = []byte("%PDF")

// Fetch implements ResumeFetcher. PDF payloads are recognized by magic
// bytes and run through text extraction; anything else is treated as plain
// text.
func (f *resumeFetcher) Fetch(ctx context.Context, resumeURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resumeURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid resume URL: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download resume: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read resume body: %w", err)
	}
	if int64(len(data)) > f.maxSize {
		return "", fmt.Errorf("resume exceeds maximum size of %d bytes", f.maxSize)
	}

	if bytes.HasPrefix(data, pdfMagic) {
		text, err := f.pdfParser.ExtractText(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse resume PDF: %w", err)
		}
		return text, nil
	}

	return string(data), nil
}
