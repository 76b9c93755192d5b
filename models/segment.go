package models

// RoofSegment 数据集中的一条屋面线段，几何以 WKT 文本存储
type RoofSegment struct {
	ID      int64  `gorm:"primary_key;autoIncrement"`
	Dataset string `gorm:"type:varchar(255);index"`
	Kind    string `gorm:"type:varchar(255)"`
	WKT     string `gorm:"type:text"`
}
