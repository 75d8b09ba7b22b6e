package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MaxDownloadSize bounds Download so a misbehaving server cannot exhaust memory.
const MaxDownloadSize = 32 << 20

// Download fetches url (typically a presigned object URL) and returns the body.
func Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxDownloadSize {
		return nil, fmt.Errorf("download exceeds %d bytes", MaxDownloadSize)
	}
	return b, nil
}
