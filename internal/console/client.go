package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const genericErrorMessage = "Request failed, please try again"

// FetchQuery carries the server-mode list parameters: the window plus the
// filter criteria, forwarded verbatim as query parameters.
type FetchQuery struct {
	Page       int
	Limit      int
	Search     string
	Department string
	Position   string
	Status     string
}

// Photo is an optional multipart attachment for create and update calls.
type Photo struct {
	Filename string
	Reader   io.Reader
}

// Client is the typed collaborator for the employee REST API. All list
// logic stays in the view state; the client only speaks the wire contract
// and normalizes every record on the way in.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("console.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("console.client")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  l,
	}
}

type pagedBody struct {
	Data struct {
		Content       []map[string]any `json:"content"`
		TotalElements int64            `json:"totalElements"`
	} `json:"data"`
}

type singleBody struct {
	Data map[string]any `json:"data"`
}

// List fetches one server-assembled page and trusts its rows and total.
func (c *Client) List(ctx context.Context, q FetchQuery) ([]EmployeeRecord, int64, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Department != "" {
		params.Set("department", q.Department)
	}
	if q.Position != "" {
		params.Set("position", q.Position)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/employees?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, c.apiError(resp)
	}

	var body pagedBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, err
	}

	rows := make([]EmployeeRecord, len(body.Data.Content))
	for i, raw := range body.Data.Content {
		rows[i] = NormalizeEmployee(raw)
	}
	return rows, body.Data.TotalElements, nil
}

func (c *Client) Get(ctx context.Context, id string) (EmployeeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/employees/"+url.PathEscape(id), nil)
	if err != nil {
		return EmployeeRecord{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return EmployeeRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return EmployeeRecord{}, c.apiError(resp)
	}

	var body singleBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return EmployeeRecord{}, err
	}
	return NormalizeEmployee(body.Data), nil
}

// Create submits a multipart form, matching what the browser console sends
// when a photo may be attached.
func (c *Client) Create(ctx context.Context, fields map[string]string, photo *Photo) (EmployeeRecord, error) {
	body, contentType, err := encodeMultipart(fields, photo)
	if err != nil {
		return EmployeeRecord{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/employees", body)
	if err != nil {
		return EmployeeRecord{}, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return EmployeeRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return EmployeeRecord{}, c.apiError(resp)
	}

	var out singleBody
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return EmployeeRecord{}, err
	}
	return NormalizeEmployee(out.Data), nil
}

// Update sends a plain JSON PUT when there is no photo. With a photo it
// tunnels through POST with a _method=PUT override field, because multipart
// bodies only travel on POST from a browser form.
func (c *Client) Update(ctx context.Context, id string, fields map[string]string, photo *Photo) (EmployeeRecord, error) {
	var req *http.Request
	var err error

	if photo == nil {
		payload := make(map[string]any, len(fields))
		for k, v := range fields {
			payload[k] = v
		}
		raw, merr := json.Marshal(payload)
		if merr != nil {
			return EmployeeRecord{}, merr
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPut,
			c.baseURL+"/employees/"+url.PathEscape(id), bytes.NewReader(raw))
		if err != nil {
			return EmployeeRecord{}, err
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		withOverride := make(map[string]string, len(fields)+1)
		for k, v := range fields {
			withOverride[k] = v
		}
		withOverride["_method"] = http.MethodPut

		body, contentType, merr := encodeMultipart(withOverride, photo)
		if merr != nil {
			return EmployeeRecord{}, merr
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/employees/"+url.PathEscape(id), body)
		if err != nil {
			return EmployeeRecord{}, err
		}
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return EmployeeRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return EmployeeRecord{}, c.apiError(resp)
	}

	var out singleBody
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return EmployeeRecord{}, err
	}
	return NormalizeEmployee(out.Data), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/employees/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.apiError(resp)
	}
	return nil
}

// apiError surfaces the server's message verbatim when the error body
// carries one, otherwise a generic fallback.
func (c *Client) apiError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return &APIError{Status: resp.StatusCode, Message: body.Message}
	}

	c.logger.Warn("collaborator answered without a message",
		zap.Int("status", resp.StatusCode),
	)
	return &APIError{Status: resp.StatusCode, Message: genericErrorMessage}
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("employee api: %s (status %d)", e.Message, e.Status)
}

func encodeMultipart(fields map[string]string, photo *Photo) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if photo != nil {
		part, err := writer.CreateFormFile("photo", photo.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, photo.Reader); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
