package transport

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// Page is the pagination envelope for list endpoints. Next and Previous are
// relative URLs preserving the caller's query string, or null at the edges.
type Page struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPage builds a pagination envelope. results must be a non-nil slice so
// empty pages render as [] rather than null.
func NewPage(uri *fasthttp.URI, page, pageSize, count int, results interface{}) Page {
	p := Page{
		Count:   count,
		Results: results,
	}
	if page*pageSize < count {
		p.Next = pageURL(uri, page+1, pageSize)
	}
	if page > 1 {
		p.Previous = pageURL(uri, page-1, pageSize)
	}
	return p
}

// pageURL rebuilds the request URL for another page, keeping every other
// query parameter (filters, search, sort) intact.
func pageURL(uri *fasthttp.URI, page, pageSize int) *string {
	var args fasthttp.Args
	uri.QueryArgs().CopyTo(&args)
	args.Set("page", strconv.Itoa(page))
	args.Set("page_size", strconv.Itoa(pageSize))

	url := fmt.Sprintf("%s?%s", uri.Path(), args.String())
	return &url
}
