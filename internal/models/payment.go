package models

import "time"

// PaymentProof is the transfer receipt staff attach before marking a quotation as paid.
type PaymentProof struct {
	QuotationID int64     `json:"quotation_id"`
	Path        string    `json:"path"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

var AllowedProofTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}
