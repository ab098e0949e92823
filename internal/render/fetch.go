package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// fetchChunkSize is the read granularity used for progress and cancellation
const fetchChunkSize = 64 * 1024

// ParseLocator turns a path or URI string into a Fyne URI
func ParseLocator(locator string) (fyne.URI, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return nil, fmt.Errorf("empty document locator")
	}
	if strings.Contains(locator, "://") {
		uri, err := storage.ParseURI(locator)
		if err != nil {
			return nil, fmt.Errorf("invalid document locator %q: %w", locator, err)
		}
		return uri, nil
	}
	return storage.NewFileURI(locator), nil
}

// Fetch reads the whole document behind locator through Fyne storage,
// reporting progress after every chunk and stopping when ctx is done.
func Fetch(ctx context.Context, locator string, progress ProgressFunc) ([]byte, error) {
	uri, err := ParseLocator(locator)
	if err != nil {
		return nil, err
	}

	total := int64(-1)
	if uri.Scheme() == "file" {
		if info, statErr := os.Stat(uri.Path()); statErr == nil {
			total = info.Size()
		}
	}

	reader, err := storage.Reader(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", uri, err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if total > 0 {
		buf.Grow(int(total))
	}
	chunk := make([]byte, fetchChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, readErr := reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if progress != nil {
				progress(int64(buf.Len()), total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %s: %w", uri, readErr)
		}
	}

	if buf.Len() == 0 {
		return nil, ErrEmptyDocument
	}
	return buf.Bytes(), nil
}
