package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// FoodImageFolder is where menu item pictures live in Cloudinary.
const FoodImageFolder = "city/food-items"

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image to Cloudinary and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file io.Reader, filename string, folder string) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}
