package server

// PutKeyRequest represents the request body for storing a value
type PutKeyRequest struct {
	Value *string `json:"value" binding:"required"`
}

// KeyResponse represents a stored key and its value
type KeyResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ListKeysResponse represents the response body for listing keys
type ListKeysResponse struct {
	Keys []string `json:"keys"`
}
