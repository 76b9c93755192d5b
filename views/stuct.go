package views

import (
	"encoding/json"

	"github.com/GrainArc/RoofLine/services"
)

type FacetController struct {
	service *services.ReconstructionService
}

// UploadData 线段上传请求，Lines 为 LINESTRING 文本
type UploadData struct {
	Dataset string
	Lines   []string
}

// ImportData 数据集导入请求，Geojson 为三维线段要素集原文
type ImportData struct {
	Dataset string
	Geojson json.RawMessage
}

// ReconstructData 按数据集重建请求
type ReconstructData struct {
	Dataset string
}

// ReconstructLinesData 按线段文本直接重建请求，不落库
type ReconstructLinesData struct {
	Lines []string
}
