// Package fetch downloads a single URL to a file.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/conn-castle/cabm/internal/logging"
	"github.com/conn-castle/cabm/internal/messages"
)

// ChunkSize is the number of bytes read from the response per write.
const ChunkSize = 1024

// Kind classifies download failures.
type Kind int

// Failure kinds, in the order they can occur.
const (
	KindSession Kind = iota + 1
	KindOpenURL
	KindStatus
	KindOpenFile
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindOpenURL:
		return "open-url"
	case KindStatus:
		return "status"
	case KindOpenFile:
		return "open-file"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Error reports a failed download.
type Error struct {
	Kind   Kind
	URL    string
	Path   string
	Status string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSession:
		return fmt.Errorf(messages.FetchSessionFailedFmt, e.URL, e.Err).Error()
	case KindOpenURL:
		return fmt.Errorf(messages.FetchOpenURLFailedFmt, e.URL, e.Err).Error()
	case KindStatus:
		return fmt.Sprintf(messages.FetchStatusFailedFmt, e.URL, e.Status)
	case KindOpenFile:
		return fmt.Errorf(messages.FetchOpenFileFailedFmt, e.Path, e.Err).Error()
	default:
		return fmt.Errorf(messages.FetchWriteFailedFmt, e.URL, e.Path, e.Err).Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a download Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var fetchErr *Error
	return errors.As(err, &fetchErr) && fetchErr.Kind == kind
}

var osCreate = os.Create

// Fetcher downloads resources over HTTP(S) without a proxy or cache.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	// CheckStatus rejects non-2xx responses before the destination is touched.
	// When false the body is written whatever the status.
	CheckStatus bool
	Logger      *slog.Logger
}

// New returns a Fetcher using a direct (proxy-less) transport.
func New(userAgent string, checkStatus bool, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		Client:      &http.Client{Transport: directTransport()},
		UserAgent:   userAgent,
		CheckStatus: checkStatus,
		Logger:      logger,
	}
}

func directTransport() *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	return transport
}

// Fetch retrieves url and writes the body to dest, replacing any existing file.
// Nothing is written to dest unless the request succeeds (and, with CheckStatus,
// returns a 2xx status). The response body is always closed before returning.
func (f *Fetcher) Fetch(ctx context.Context, url string, dest string) error {
	logger := logging.OrDiscard(f.Logger)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Kind: KindSession, URL: url, Path: dest, Err: err}
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	client := f.Client
	if client == nil {
		client = &http.Client{Transport: directTransport()}
	}
	logger.Debug(messages.FetchDownloading, "url", url, "path", dest)
	resp, err := client.Do(req)
	if err != nil {
		return &Error{Kind: KindOpenURL, URL: url, Path: dest, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	success := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if !success {
		if f.CheckStatus {
			return &Error{Kind: KindStatus, URL: url, Path: dest, Status: resp.Status}
		}
		logger.Warn(messages.FetchNonSuccessStatus, "url", url, "status", resp.Status)
	}

	file, err := osCreate(dest)
	if err != nil {
		return &Error{Kind: KindOpenFile, URL: url, Path: dest, Err: err}
	}
	n, copyErr := copyChunks(file, resp.Body)
	closeErr := file.Close()
	if copyErr != nil {
		return &Error{Kind: KindWrite, URL: url, Path: dest, Err: copyErr}
	}
	if closeErr != nil {
		return &Error{Kind: KindWrite, URL: url, Path: dest, Err: closeErr}
	}
	logger.Debug(messages.FetchDownloaded, "url", url, "path", dest, "bytes", n, "status", resp.StatusCode)
	return nil
}

// copyChunks copies src to dst ChunkSize bytes at a time, writing each chunk as soon as it is read.
func copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, ChunkSize)
	var total int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			written, err := dst.Write(buf[:n])
			total += int64(written)
			if err != nil {
				return total, err
			}
			if written != n {
				return total, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return total, nil
		}
		if readErr != nil {
			return total, readErr
		}
	}
}
