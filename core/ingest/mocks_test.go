package ingest

import (
	"context"
	"io"
	"strings"

	"feedreader-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc            func(ctx context.Context, url string) (interfaces.Response, error)
	getWithHeadersFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getWithHeadersFunc != nil {
		return m.getWithHeadersFunc(ctx, url, headers)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	status     string
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Status() string {
	return m.status
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	messages []string
}

func (m *mockLogger) log(msg string) {
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log(msg) }
