package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// HTTPClient là client dùng chung cho các test case, tự gắn bearer token
// vào mọi request sau khi SetToken.
type HTTPClient struct {
	BaseURL string
	Token   string
	client  *http.Client
}

// NewHTTPClient tạo client trỏ vào baseURL với timeout tính bằng giây
func NewHTTPClient(baseURL string, timeoutSeconds int) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// SetToken đặt bearer token cho các request tiếp theo
func (c *HTTPClient) SetToken(token string) {
	c.Token = token
}

func (c *HTTPClient) do(method, path string, body io.Reader, contentType string) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, respBody, nil
}

func (c *HTTPClient) doJSON(method, path string, payload interface{}) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(data)
	}
	return c.do(method, path, body, "application/json")
}

// GET gửi request GET tới path (tương đối so với BaseURL)
func (c *HTTPClient) GET(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodGet, path, nil, "")
}

// POST gửi request POST với payload JSON
func (c *HTTPClient) POST(path string, payload interface{}) (*http.Response, []byte, error) {
	return c.doJSON(http.MethodPost, path, payload)
}

// PATCH gửi request PATCH với payload JSON
func (c *HTTPClient) PATCH(path string, payload interface{}) (*http.Response, []byte, error) {
	return c.doJSON(http.MethodPatch, path, payload)
}

// DELETE gửi request DELETE tới path
func (c *HTTPClient) DELETE(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodDelete, path, nil, "")
}

// MultipartFile mô tả một file đính kèm trong request multipart
type MultipartFile struct {
	Filename string
	Content  []byte
}

// PostMultipart gửi request POST multipart/form-data với các field text và file
func (c *HTTPClient) PostMultipart(path string, fields map[string]string, files map[string]MultipartFile) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, nil, err
		}
	}
	for key, file := range files {
		part, err := writer.CreateFormFile(key, file.Filename)
		if err != nil {
			return nil, nil, err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, nil, err
	}

	return c.do(http.MethodPost, path, &buf, writer.FormDataContentType())
}

// PatchMultipart gửi request PATCH multipart/form-data (update avatar, thumbnail...)
func (c *HTTPClient) PatchMultipart(path string, fields map[string]string, files map[string]MultipartFile) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, nil, err
		}
	}
	for key, file := range files {
		part, err := writer.CreateFormFile(key, file.Filename)
		if err != nil {
			return nil, nil, err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, nil, err
	}

	return c.do(http.MethodPatch, path, &buf, writer.FormDataContentType())
}

// String trả về mô tả ngắn của client, tiện cho log
func (c *HTTPClient) String() string {
	return fmt.Sprintf("HTTPClient(%s)", c.BaseURL)
}
