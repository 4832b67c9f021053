package httpdto

// UploadResponse is returned after a successful image upload.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
