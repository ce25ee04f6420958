package dto

type UploadResponse struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}
