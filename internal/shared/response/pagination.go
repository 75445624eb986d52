package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// PageLinks holds navigation URLs for a paginated collection.
// prev/next are null on the first/last page respectively.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageMeta describes the current page of a paginated collection.
// from/to are null when the page is empty.
type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int    `json:"total"`
}

// Paginated writes a paginated collection body:
// {data: [...], links: {...}, meta: {...}}.
// count is the number of items on the current page.
func Paginated(c *gin.Context, statusCode int, data interface{}, path string, page, perPage, count, total int) {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d", path, p)
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	meta := PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}
	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		meta.From = &from
		meta.To = &to
	}

	c.JSON(statusCode, gin.H{
		"data":  data,
		"links": links,
		"meta":  meta,
	})
}
