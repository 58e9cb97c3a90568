package api

import (
	"net/http"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/gin-gonic/gin"
)

// ShortenRequest is the body of POST /shorten. The url is stored as given;
// only its presence and type are checked.
type ShortenRequest struct {
	URL *string `json:"url" binding:"required"`
}

// ShortenResponse is returned by POST /shorten.
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}

// StatsResponse is returned by GET /stats/:short_id.
type StatsResponse struct {
	URL    string `json:"url"`
	Clicks int64  `json:"clicks"`
}

type shortIDURI struct {
	ShortID string `uri:"short_id" binding:"required"`
}

// ShortenHandler stores a URL under a new short code.
func ShortenHandler(linkService *services.LinkService, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShortenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithValidationError(c, err)
			return
		}

		link, err := linkService.Shorten(c.Request.Context(), *req.URL)
		if err != nil {
			abortWithInternal(c, err)
			return
		}

		c.JSON(http.StatusOK, ShortenResponse{ShortURL: baseURL + "/" + link.ShortID})
	}
}

// RedirectHandler counts a click and redirects to the stored URL.
// Location carries the stored string byte for byte: c.Redirect would resolve
// a value without scheme against the request path.
func RedirectHandler(linkService *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri shortIDURI
		if err := c.ShouldBindUri(&uri); err != nil {
			abortWithValidationError(c, err)
			return
		}

		target, err := linkService.Resolve(c.Request.Context(), uri.ShortID)
		if err != nil {
			abortWithError(c, err, customerrors.DetailShortURLNotFound)
			return
		}

		c.Header("Location", target)
		c.Status(http.StatusTemporaryRedirect)
	}
}

// StatsHandler reports the target and click count of a short code.
func StatsHandler(linkService *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri shortIDURI
		if err := c.ShouldBindUri(&uri); err != nil {
			abortWithValidationError(c, err)
			return
		}

		link, err := linkService.Stats(c.Request.Context(), uri.ShortID)
		if err != nil {
			abortWithError(c, err, customerrors.DetailShortURLNotFound)
			return
		}

		c.JSON(http.StatusOK, StatsResponse{URL: link.FullURL, Clicks: link.Clicks})
	}
}
