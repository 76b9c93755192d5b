package routers

import (
	"github.com/GrainArc/RoofLine/views"
	"github.com/gin-gonic/gin"
)

func FacetRouters(r *gin.Engine) {
	FacetController := views.NewFacetController()
	facetRouter := r.Group("/facet")
	{
		facetRouter.POST("/UploadSegments", FacetController.UploadSegments)
		facetRouter.POST("/ImportGeoJson", FacetController.ImportGeoJson)
		facetRouter.GET("/ShowSegments", FacetController.ShowSegments)
		facetRouter.POST("/Reconstruct", FacetController.Reconstruct)
		facetRouter.POST("/ReconstructLines", FacetController.ReconstructLines)
		facetRouter.GET("/GetFacets", FacetController.GetFacets)
		facetRouter.GET("/ExportGeoJson", FacetController.ExportGeoJson)
	}
}
