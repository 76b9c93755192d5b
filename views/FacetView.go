package views

import (
	"net/http"

	"github.com/GrainArc/RoofLine/Facet"
	"github.com/GrainArc/RoofLine/config"
	"github.com/GrainArc/RoofLine/methods"
	"github.com/GrainArc/RoofLine/models"
	"github.com/GrainArc/RoofLine/services"
	"github.com/gin-gonic/gin"
)

func NewFacetController() *FacetController {
	return &FacetController{service: services.NewReconstructionService(config.Ladder)}
}

// UploadSegments 批量上传 WKT 线段，任一条非法则整体拒绝
func (fc *FacetController) UploadSegments(c *gin.Context) {
	var jsonData UploadData
	if err := c.BindJSON(&jsonData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if jsonData.Dataset == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少数据集名称"})
		return
	}
	segments, err := methods.ParseLineStrings(jsonData.Lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	imported := make([]methods.ImportedSegment, 0, len(segments))
	for _, segment := range segments {
		imported = append(imported, methods.ImportedSegment{
			Segment: segment,
			WKT:     methods.LineStringZString(segment),
		})
	}
	methods.SaveSegmentsToDB(models.DB, jsonData.Dataset, imported)
	c.JSON(http.StatusOK, gin.H{"dataset": jsonData.Dataset, "count": len(imported)})
}

// ImportGeoJson 导入三维线段数据集，保留线类型字段
func (fc *FacetController) ImportGeoJson(c *gin.Context) {
	var jsonData ImportData
	if err := c.BindJSON(&jsonData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if jsonData.Dataset == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少数据集名称"})
		return
	}
	imported, err := methods.ParseGeoJSONDataset(jsonData.Geojson)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	methods.SaveSegmentsToDB(models.DB, jsonData.Dataset, imported)
	c.JSON(http.StatusOK, gin.H{"dataset": jsonData.Dataset, "count": len(imported)})
}

// ShowSegments 列出数据集的线段记录
func (fc *FacetController) ShowSegments(c *gin.Context) {
	dataset := c.Query("dataset")
	var rows []models.RoofSegment
	if err := models.DB.Where("dataset = ?", dataset).Order("id").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Reconstruct 对数据集执行重建并落库，返回任务号与多边形文本
func (fc *FacetController) Reconstruct(c *gin.Context) {
	var jsonData ReconstructData
	if err := c.BindJSON(&jsonData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	jobID, paths, err := fc.service.ReconstructDataset(c.Request.Context(), models.DB, jsonData.Dataset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	polygons := make([]string, 0, len(paths))
	for _, path := range paths {
		polygons = append(polygons, methods.PolygonZString(path))
	}
	c.JSON(http.StatusOK, gin.H{"jobid": jobID, "polygons": polygons})
}

// ReconstructLines 对请求中的线段文本直接重建，不读写数据库
func (fc *FacetController) ReconstructLines(c *gin.Context) {
	var jsonData ReconstructLinesData
	if err := c.BindJSON(&jsonData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	paths, err := fc.service.ReconstructLines(c.Request.Context(), jsonData.Lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	polygons := make([]string, 0, len(paths))
	for _, path := range paths {
		polygons = append(polygons, methods.PolygonZString(path))
	}
	c.JSON(http.StatusOK, gin.H{"polygons": polygons})
}

// GetFacets 按任务号返回结果多边形
func (fc *FacetController) GetFacets(c *gin.Context) {
	jobID := c.Query("jobid")
	var rows []models.FacetResult
	if err := models.DB.Where("job_id = ?", jobID).Order("ordinal").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	polygons := make([]string, 0, len(rows))
	for _, row := range rows {
		polygons = append(polygons, row.WKT)
	}
	c.JSON(http.StatusOK, gin.H{"jobid": jobID, "polygons": polygons})
}

// ExportGeoJson 按任务号导出 GeoJSON 要素集
func (fc *FacetController) ExportGeoJson(c *gin.Context) {
	jobID := c.Query("jobid")
	var rows []models.FacetResult
	if err := models.DB.Where("job_id = ?", jobID).Order("ordinal").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	paths := make([]Facet.Path, 0, len(rows))
	for _, row := range rows {
		path, err := methods.ParsePolygonZ(row.WKT)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		paths = append(paths, path)
	}
	data, err := methods.ExportFacetCollection(jobID, paths)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}
