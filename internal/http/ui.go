package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UIController serves the server-rendered catalog pages. The pages consume
// the JSON API from the browser.
type UIController struct{}

// NewUIController creates a new UIController.
func NewUIController() *UIController {
	return &UIController{}
}

// IndexPage renders the catalog list page.
func (controller *UIController) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// AddBookPage renders the add-book form.
func (controller *UIController) AddBookPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_book.html", gin.H{})
}

// EditBookPage renders the edit-book form. The book itself is loaded from
// the API by the page script, which handles unknown IDs.
func (controller *UIController) EditBookPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "edit_book.html", gin.H{
		"BookID": id,
	})
}
