package attachment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

// maxSize ограничение размера вложения
const maxSize = 10 << 20

// Client загружает документ, прикладываемый к письму-подтверждению.
// Источник задается URL (http/https) или путем к локальному файлу.
type Client struct {
	source     string
	name       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиента; name переопределяет имя файла во вложении
func NewClient(source, name string, timeout time.Duration, log Logger) *Client {
	return &Client{
		source: source,
		name:   name,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Fetch загружает вложение
func (c *Client) Fetch(ctx context.Context) (*Document, error) {
	if strings.TrimSpace(c.source) == "" {
		return nil, ErrNotConfigured
	}

	if strings.HasPrefix(c.source, "http://") || strings.HasPrefix(c.source, "https://") {
		return c.fetchURL(ctx)
	}
	return c.readFile()
}

func (c *Client) fetchURL(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrUnavailable, err)
	}
	if len(data) > maxSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrTooLarge, maxSize)
	}

	c.log.Info("Attachment fetched from %s (%d bytes)", c.source, len(data))

	return &Document{
		Name:        c.fileName(path.Base(req.URL.Path)),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (c *Client) readFile() (*Document, error) {
	info, err := os.Stat(c.source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: stat: %v", ErrUnavailable, err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrTooLarge, maxSize)
	}

	data, err := os.ReadFile(c.source)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrUnavailable, err)
	}

	return &Document{
		Name: c.fileName(info.Name()),
		Data: data,
	}, nil
}

func (c *Client) fileName(fallback string) string {
	if c.name != "" {
		return c.name
	}
	if fallback == "" || fallback == "/" || fallback == "." {
		return "adjunto"
	}
	return fallback
}
