/*
File    : glint/std/http.go
*/

// This file defines an HTTP client builtin pair (get_http/post_http)
// plus the small set of request/url helpers SPEC_FULL.md's domain
// stack calls for. Grounded on the teacher's http.go, trimmed to the
// client side: the teacher's listen_http/create_server/handle_server
// machinery called back into a script handler per request, which has
// no counterpart in SPEC_FULL.md's scope (a client-only scripting
// language, not a web framework) - dropped rather than carried in
// unused.
package std

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("get_http", getHTTPFn)
	simple("post_http", postHTTPFn)
	simple("put_http", putHTTPFn)
	simple("delete_http", deleteHTTPFn)
	simple("request_http", requestHTTPFn)
	simple("url_encode", urlEncodeFn)
	simple("url_decode", urlDecodeFn)
	simple("download_file", downloadFileFn)
}

func getHTTPFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("get_http expects 1 argument (url)")
	}
	resp, err := http.Get(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("get_http failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return objects.NewString(string(body)), nil
}

func postHTTPFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("post_http expects 3 arguments (url, content_type, body)")
	}
	resp, err := http.Post(args[0].String(), args[1].String(), strings.NewReader(args[2].String()))
	if err != nil {
		return nil, fmt.Errorf("post_http failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return objects.NewString(string(body)), nil
}

func putHTTPFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("put_http expects 3 arguments (url, content_type, body)")
	}
	req, err := http.NewRequest(http.MethodPut, args[0].String(), strings.NewReader(args[2].String()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", args[1].String())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("put_http failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return objects.NewString(string(body)), nil
}

func deleteHTTPFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("delete_http expects 1 argument (url)")
	}
	req, err := http.NewRequest(http.MethodDelete, args[0].String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("delete_http failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return objects.NewString(string(body)), nil
}

// requestHTTPFn performs a generic request and returns a dict of
// status/body/headers, matching the teacher's request_http shape.
func requestHTTPFn(args []objects.Value) (objects.Value, error) {
	if len(args) < 2 || len(args) > 4 {
		return nil, fmt.Errorf("request_http expects 2 to 4 arguments (method, url, [headers], [body])")
	}
	method := strings.ToUpper(args[0].String())
	var bodyReader io.Reader
	if len(args) == 4 {
		bodyReader = strings.NewReader(args[3].String())
	}
	req, err := http.NewRequest(method, args[1].String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if len(args) >= 3 {
		if headers, ok := args[2].(*objects.Dict); ok {
			for _, k := range headers.Keys {
				req.Header.Set(k, headers.Pairs[k].String())
			}
		}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	result := objects.NewDict()
	result.Set(objects.NewString("status"), objects.NewNumberInt(int64(resp.StatusCode)))
	result.Set(objects.NewString("body"), objects.NewString(string(respBody)))
	headers := objects.NewDict()
	for k, v := range resp.Header {
		headers.Set(objects.NewString(k), objects.NewString(strings.Join(v, ", ")))
	}
	result.Set(objects.NewString("headers"), headers)
	return result, nil
}

func urlEncodeFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("url_encode expects 1 argument")
	}
	return objects.NewString(url.QueryEscape(args[0].String())), nil
}

func urlDecodeFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("url_decode expects 1 argument")
	}
	res, err := url.QueryUnescape(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("url_decode failed: %w", err)
	}
	return objects.NewString(res), nil
}

func downloadFileFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("download_file expects 2 arguments (url, path)")
	}
	resp, err := http.Get(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()
	out, err := os.Create(args[1].String())
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	return objects.NullValue, nil
}
