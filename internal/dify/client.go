// Package dify asks a Dify workflow for file rename suggestions and turns
// the untrusted reply into validated name pairs.
package dify

import (
	"context"
	"fmt"
	"strings"
	"time"

	resty "github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/laipz8200/anime-librarian/internal/plan"
)

// workflowRequest is the Dify workflow run payload. Both name lists are sent
// newline-joined; response_mode "blocking" makes the call synchronous.
type workflowRequest struct {
	Inputs       workflowInputs `json:"inputs"`
	User         string         `json:"user"`
	ResponseMode string         `json:"response_mode"`
}

type workflowInputs struct {
	Files       string `json:"files"`
	Directories string `json:"directories"`
}

// Client calls the Dify workflow endpoint.
type Client struct {
	http     *resty.Client
	endpoint string
	userName string
	logger   *zap.SugaredLogger
}

// NewClient returns a client posting to endpoint with the given bearer key
// and request timeout. userName fills the request's "user" field.
func NewClient(endpoint, apiKey, userName string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("Authorization", "Bearer "+apiKey)
	c.SetHeader("Content-Type", "application/json")
	return &Client{
		http:     c,
		endpoint: endpoint,
		userName: userName,
		logger:   logger,
	}
}

// Resolve sends the source file names and target directory names to the
// workflow and returns the suggested name pairs.
//
// Transport failures and non-2xx statuses yield a *TransportError; a reply
// with the wrong nesting or an unparseable payload yields a *ParseError.
func (c *Client) Resolve(ctx context.Context, files, dirs []string) ([]plan.NamePair, error) {
	payload := workflowRequest{
		Inputs: workflowInputs{
			Files:       strings.Join(files, "\n"),
			Directories: strings.Join(dirs, "\n"),
		},
		User:         c.userName,
		ResponseMode: "blocking",
	}

	c.logger.Debugw("sending request to AI service",
		"endpoint", c.endpoint,
		"files", len(files),
		"directories", len(dirs),
		"headers", redactHeaders(c.http.Header),
	)

	resp, err := c.http.R().SetContext(ctx).SetBody(payload).Post(c.endpoint)
	if err != nil {
		return nil, &TransportError{cause: err}
	}
	if resp.IsError() {
		return nil, &TransportError{cause: fmt.Errorf("unexpected status %s", resp.Status())}
	}
	c.logger.Debugw("received response from AI service", "status", resp.StatusCode())

	text, err := extractText(resp.Body())
	if err != nil {
		c.logger.Errorw("invalid response structure from AI service", "error", err)
		return nil, &ParseError{cause: err}
	}

	pairs, err := parseNamePairs(text)
	if err != nil {
		c.logger.Errorw("error parsing AI response", "error", err)
		return nil, &ParseError{cause: err}
	}

	c.logger.Debugw("parsed AI response", "pairs", len(pairs))
	return pairs, nil
}

// redactHeaders copies headers for logging with credentials masked. The API
// key must never reach the log stream in cleartext.
func redactHeaders(headers map[string][]string) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if strings.EqualFold(name, "Authorization") {
			out[name] = "Bearer ***"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}
