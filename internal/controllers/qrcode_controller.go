package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"shortlink-be/internal/httperror"
	"shortlink-be/internal/service"
)

// qrCodeSize is the edge length of the PNG in pixels.
const qrCodeSize = 256

type QRCodeController struct {
	urlService service.URLService
	logger     *slog.Logger
}

func NewQRCodeController(urlService service.URLService, logger *slog.Logger) *QRCodeController {
	return &QRCodeController{
		urlService: urlService,
		logger:     logger,
	}
}

// GenerateQRCode handles GET /:path/qrcode - PNG QR code of the short URL
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	path := c.Param("path")

	// Only existing short links get a code
	if _, err := qc.urlService.Resolve(c.Request.Context(), path); err != nil {
		httperror.Abort(c, qc.logger, err)
		return
	}

	qrCode, err := qrcode.New(qc.urlService.ShortURL(path), qrcode.Medium)
	if err != nil {
		httperror.Abort(c, qc.logger, err)
		return
	}

	pngData, err := qrCode.PNG(qrCodeSize)
	if err != nil {
		httperror.Abort(c, qc.logger, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename="+path+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}
