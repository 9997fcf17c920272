package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-catalog/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, h *handlers.StorefrontHandler) {
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/storefronts", h.ListStorefronts)

		sf := v1.Group("/storefronts/:storefront")
		{
			sf.GET("/vendors", h.GetVendors)
			sf.GET("/vendors/:vendorID", h.GetVendor)
			sf.GET("/vendors/:vendorID/products/:productID", h.GetProduct)
			sf.GET("/taxonomy", h.GetTaxonomy)
			sf.GET("/hot-deals", h.GetHotDeals)
		}
	}
}
