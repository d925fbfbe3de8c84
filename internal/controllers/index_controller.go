package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"shortlink-be/internal/models"
)

type IndexController struct {
	routes func() gin.RoutesInfo
}

// NewIndexController lists whatever routes returns at request time,
// normally (*gin.Engine).Routes.
func NewIndexController(routes func() gin.RoutesInfo) *IndexController {
	return &IndexController{routes: routes}
}

// ListRoutes handles GET /
func (ic *IndexController) ListRoutes(c *gin.Context) {
	table := models.RouteTable{Get: []string{}, Post: []string{}}
	for _, r := range ic.routes() {
		switch r.Method {
		case http.MethodGet:
			table.Get = append(table.Get, r.Path)
		case http.MethodPost:
			table.Post = append(table.Post, r.Path)
		}
	}
	sort.Strings(table.Get)
	sort.Strings(table.Post)

	c.JSON(http.StatusOK, models.RoutesResponse{Routes: table})
}
