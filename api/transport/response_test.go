package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func pageURI(t *testing.T, raw string) *fasthttp.URI {
	t.Helper()
	var uri fasthttp.URI
	require.NoError(t, uri.Parse(nil, []byte(raw)))
	return &uri
}

func TestNewPage_MiddlePageHasBothLinks(t *testing.T) {
	page := NewPage(pageURI(t, "/api/v1/tasks"), 2, 5, 12, []string{"a"})
	require.Equal(t, 12, page.Count)
	require.NotNil(t, page.Next)
	require.Equal(t, "/api/v1/tasks?page=3&page_size=5", *page.Next)
	require.NotNil(t, page.Previous)
	require.Equal(t, "/api/v1/tasks?page=1&page_size=5", *page.Previous)
}

func TestNewPage_LinksKeepFilterParams(t *testing.T) {
	uri := pageURI(t, "/api/v1/tasks?completed=true&search=milk&page=2&page_size=1")
	page := NewPage(uri, 2, 1, 3, []string{"a"})

	require.NotNil(t, page.Next)
	require.Equal(t, "/api/v1/tasks?completed=true&search=milk&page=3&page_size=1", *page.Next)
	require.NotNil(t, page.Previous)
	require.Equal(t, "/api/v1/tasks?completed=true&search=milk&page=1&page_size=1", *page.Previous)
}

func TestNewPage_FirstAndLastEdges(t *testing.T) {
	first := NewPage(pageURI(t, "/api/v1/tasks"), 1, 5, 12, nil)
	require.Nil(t, first.Previous)
	require.NotNil(t, first.Next)

	last := NewPage(pageURI(t, "/api/v1/tasks"), 3, 5, 12, nil)
	require.NotNil(t, last.Previous)
	require.Nil(t, last.Next)
}

func TestNewPage_BeyondLastPageKeepsCount(t *testing.T) {
	page := NewPage(pageURI(t, "/api/v1/tasks"), 9, 5, 12, []string{})
	require.Equal(t, 12, page.Count)
	require.Nil(t, page.Next)
	require.NotNil(t, page.Previous)
}

func TestPageEmptyResultsRenderAsArray(t *testing.T) {
	page := NewPage(pageURI(t, "/api/v1/activities"), 1, 5, 0, []string{})
	body, err := json.Marshal(page)
	require.NoError(t, err)
	require.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, string(body))
}
