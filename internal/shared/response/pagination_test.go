package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPath = "http://localhost/api/v1/posts"

type page struct {
	Data  []string  `json:"data"`
	Links PageLinks `json:"links"`
	Meta  PageMeta  `json:"meta"`
}

func renderPage(t *testing.T, data []string, pageNo, perPage, count, total int) page {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, listPath, nil)

	Paginated(c, http.StatusOK, data, listPath, pageNo, perPage, count, total)
	require.Equal(t, http.StatusOK, w.Code)

	var body page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPaginatedFirstOfTwoPages(t *testing.T) {
	// 22 items, 20 per page: page 1 holds 1..20
	body := renderPage(t, make([]string, 20), 1, 20, 20, 22)

	assert.Equal(t, listPath+"?page=1", body.Links.First)
	assert.Equal(t, listPath+"?page=2", body.Links.Last)
	assert.Nil(t, body.Links.Prev)
	require.NotNil(t, body.Links.Next)
	assert.Equal(t, listPath+"?page=2", *body.Links.Next)

	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, 2, body.Meta.LastPage)
	require.NotNil(t, body.Meta.From)
	require.NotNil(t, body.Meta.To)
	assert.Equal(t, 1, *body.Meta.From)
	assert.Equal(t, 20, *body.Meta.To)
	assert.Equal(t, 20, body.Meta.PerPage)
	assert.Equal(t, 22, body.Meta.Total)
	assert.Equal(t, listPath, body.Meta.Path)
}

func TestPaginatedLastPage(t *testing.T) {
	// page 2 of 22 items holds 21..22, no next link
	body := renderPage(t, make([]string, 2), 2, 20, 2, 22)

	require.NotNil(t, body.Links.Prev)
	assert.Equal(t, listPath+"?page=1", *body.Links.Prev)
	assert.Nil(t, body.Links.Next)

	assert.Equal(t, 2, body.Meta.CurrentPage)
	require.NotNil(t, body.Meta.From)
	require.NotNil(t, body.Meta.To)
	assert.Equal(t, 21, *body.Meta.From)
	assert.Equal(t, 22, *body.Meta.To)
}

func TestPaginatedEmptyCollection(t *testing.T) {
	body := renderPage(t, []string{}, 1, 20, 0, 0)

	// last_page stays 1 for an empty collection, from/to are null
	assert.Equal(t, 1, body.Meta.LastPage)
	assert.Nil(t, body.Meta.From)
	assert.Nil(t, body.Meta.To)
	assert.Equal(t, 0, body.Meta.Total)
	assert.Nil(t, body.Links.Prev)
	assert.Nil(t, body.Links.Next)
	assert.Equal(t, listPath+"?page=1", body.Links.Last)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestPaginatedExactMultiple(t *testing.T) {
	// 40 items over 20 per page is exactly 2 pages
	body := renderPage(t, make([]string, 20), 2, 20, 20, 40)

	assert.Equal(t, 2, body.Meta.LastPage)
	assert.Nil(t, body.Links.Next)
	require.NotNil(t, body.Meta.From)
	assert.Equal(t, 21, *body.Meta.From)
	assert.Equal(t, 40, *body.Meta.To)
}

func TestPaginatedPageBeyondRange(t *testing.T) {
	// an out-of-range page renders empty with honest meta
	body := renderPage(t, []string{}, 5, 20, 0, 22)

	assert.Equal(t, 5, body.Meta.CurrentPage)
	assert.Equal(t, 2, body.Meta.LastPage)
	assert.Nil(t, body.Meta.From)
	assert.Nil(t, body.Meta.To)
	assert.Nil(t, body.Links.Next, "no next past the last page")
	require.NotNil(t, body.Links.Prev)
}
