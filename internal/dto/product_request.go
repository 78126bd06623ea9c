package dto

type ProductRequest struct {
	ID          string
	VendorID    string
	ProductName string  `json:"productName" form:"productName"`
	Category    string  `json:"category" form:"category"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Thumbnail   *FileUpload
}
