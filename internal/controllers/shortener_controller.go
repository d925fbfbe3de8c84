package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortlink-be/internal/httperror"
	"shortlink-be/internal/middleware"
	"shortlink-be/internal/service"
)

type ShortenerController struct {
	urlService service.URLService
	logger     *slog.Logger
}

func NewShortenerController(urlService service.URLService, logger *slog.Logger) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
		logger:     logger,
	}
}

// CreateShortURL handles POST / - expects middleware.RequireCreateURLRequest before it
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	req, ok := middleware.CreateURLRequestFrom(c)
	if !ok {
		httperror.Abort(c, sc.logger, service.ErrMissingBody)
		return
	}

	response, err := sc.urlService.CreateOrGet(c.Request.Context(), *req.URL)
	if err != nil {
		httperror.Abort(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RedirectToURL handles GET /:path - redirects to original URL
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	originalURL, err := sc.urlService.Resolve(c.Request.Context(), c.Param("path"))
	if err != nil {
		httperror.Abort(c, sc.logger, err)
		return
	}

	// Short links never change, so the redirect is permanent
	c.Redirect(http.StatusMovedPermanently, originalURL)
}
