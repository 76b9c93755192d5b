package models

// FacetJob 一次重建任务的记录
type FacetJob struct {
	ID      int64  `gorm:"primary_key;autoIncrement"`
	JobID   string `gorm:"type:varchar(64);index"`
	Dataset string `gorm:"type:varchar(255)"`
	Status  string `gorm:"type:varchar(32)"`
	Facets  int
	Date    string `gorm:"type:varchar(255)"`
}

// FacetResult 任务产出的一个基本面，按发现顺序编号
type FacetResult struct {
	ID      int64  `gorm:"primary_key;autoIncrement"`
	JobID   string `gorm:"type:varchar(64);index"`
	Ordinal int
	WKT     string `gorm:"type:text"`
}
