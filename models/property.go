package models

import "time"

// PropertyColumns 表格导入必需的列，顺序即导出顺序
var PropertyColumns = []string{"name", "number", "location", "pricing", "requirements", "remarks"}

// Property 房源记录，创建后不再修改
type Property struct {
	ID           string    `bson:"id" json:"id" csv:"id"`
	Name         string    `bson:"name" json:"name" csv:"name"`
	Number       string    `bson:"number" json:"number" csv:"number"`
	Location     string    `bson:"location" json:"location" csv:"location"`
	Pricing      string    `bson:"pricing" json:"pricing" csv:"pricing"`
	Requirements string    `bson:"requirements" json:"requirements" csv:"requirements"`
	Remarks      string    `bson:"remarks" json:"remarks" csv:"remarks"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at" csv:"created_at"`
}

// UploadResult 表格上传结果
type UploadResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
