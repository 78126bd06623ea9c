package dto

type FileUpload struct {
	Name string
	Data []byte
}
