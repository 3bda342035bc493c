package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// FormFile is a file part of a multipart submission.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

// APIClient drives the service over HTTP in end-to-end tests.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(
	baseURL string,
	httpClient *http.Client,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.httpRequest(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

// MultipartForm posts fields and files as multipart/form-data.
func (a APIClient) MultipartForm(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	fields url.Values,
	files []FormFile,
	dest any,
	errDest any,
) (*http.Response, error) {
	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	for key, values := range fields {
		for _, v := range values {
			if err := mw.WriteField(key, v); err != nil {
				return nil, fmt.Errorf("mw.WriteField: %w", err)
			}
		}
	}

	for _, file := range files {
		part, err := mw.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("mw.CreateFormFile: %w", err)
		}

		if _, err = part.Write(file.Content); err != nil {
			return nil, fmt.Errorf("part.Write: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("mw.Close: %w", err)
	}

	headers = withContentType(headers, mw.FormDataContentType())

	return a.httpRequest(ctx, http.MethodPost, endpoint, headers, &body, dest, errDest)
}

// URLEncodedForm posts fields as application/x-www-form-urlencoded.
func (a APIClient) URLEncodedForm(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	fields url.Values,
	dest any,
	errDest any,
) (*http.Response, error) {
	headers = withContentType(headers, "application/x-www-form-urlencoded")

	return a.httpRequest(ctx, http.MethodPost, endpoint, headers, strings.NewReader(fields.Encode()), dest, errDest)
}

// Do sends a bare request, for preflight and header checks.
func (a APIClient) Do(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
) (*http.Response, error) {
	return a.httpRequest(ctx, httpMethod, endpoint, headers, http.NoBody, nil, nil)
}

func (a APIClient) httpRequest(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	logRequest(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	logResponse(resp)

	if err = parseResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("parseResponse: %w", err)
	}

	return resp, nil
}

func withContentType(headers http.Header, contentType string) http.Header {
	h := headers.Clone()
	if h == nil {
		h = http.Header{}
	}

	h.Set("Content-Type", contentType)

	return h
}

func parseResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices && dest != nil {
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}
	} else if errDest != nil {
		if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}
	}

	return nil
}

func logRequest(r *http.Request) {
	log.Printf("Request:  %s %s", r.Method, r.URL)
}

func logResponse(r *http.Response) {
	rawResponse, err := httputil.DumpResponse(r, true)
	if err == nil {
		log.Println("Response:", string(rawResponse))
	}
}
