package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// nodeClient talks to the object gateway of a single node.
type nodeClient struct {
	base string
	hc   *http.Client
}

// newNodeClient constructs a client for the endpoint provided
// in global arguments.
func newNodeClient() (*nodeClient, error) {
	base, err := getEndpointURL()
	if err != nil {
		return nil, err
	}

	return &nodeClient{
		base: base,
		hc:   &http.Client{Timeout: timeout},
	}, nil
}

// objectURL builds the gateway URL of the object. Key segments are
// escaped one by one so that the slashes separating them survive.
func (c *nodeClient) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i := range segments {
		segments[i] = url.PathEscape(segments[i])
	}

	return c.base + "/objects/" + strings.Join(segments, "/")
}

func (c *nodeClient) putObject(key string, payload io.Reader) error {
	req, err := http.NewRequest(http.MethodPut, c.objectURL(key), payload)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return responseError(resp)
	}

	return nil
}

func (c *nodeClient) getObject(key string, w io.Writer) (int64, error) {
	resp, err := c.hc.Get(c.objectURL(key))
	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, responseError(resp)
	}

	return io.Copy(w, resp.Body)
}

// headObject checks object availability and returns its payload size.
func (c *nodeClient) headObject(key string) (int64, error) {
	resp, err := c.hc.Head(c.objectURL(key))
	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, responseError(resp)
	}

	return resp.ContentLength, nil
}

func (c *nodeClient) deleteObject(key string) error {
	req, err := http.NewRequest(http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return responseError(resp)
	}

	return nil
}

// responseError converts an unexpected gateway response into an error.
// Gateway errors carry a JSON body with a single "error" field.
func responseError(resp *http.Response) error {
	msg := struct {
		Error string `json:"error"`
	}{}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err == nil && json.Unmarshal(data, &msg) == nil && msg.Error != "" {
		return fmt.Errorf("%s (HTTP %d)", msg.Error, resp.StatusCode)
	}

	return fmt.Errorf("unexpected response status: %s", resp.Status)
}
