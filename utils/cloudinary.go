package utils

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// InitCloudinary wires the global client from CLOUDINARY_URL.
func InitCloudinary() error {
	cloudinaryURL := os.Getenv("CLOUDINARY_URL")

	if cloudinaryURL == "" {
		return fmt.Errorf("CLOUDINARY_URL environment variable is required")
	}

	var err error
	cld, err = cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	log.Println("Cloudinary initialized")
	return nil
}

// GetCloudinary returns the shared client.
func GetCloudinary() *cloudinary.Cloudinary {
	return cld
}

// UploadResult describes a stored image.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
}

// UploadFile stores an image under the given folder.
func UploadFile(file *multipart.FileHeader, folder string) (*UploadResult, error) {
	if cld == nil {
		return nil, fmt.Errorf("cloudinary not initialized")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	filename := generateFilename(file.Filename, folder)

	ctx := context.Background()
	result, err := cld.Upload.Upload(ctx, f, uploader.UploadParams{
		PublicID:       filename,
		ResourceType:   "image",
		Folder:         folder,
		Overwrite:      api.Bool(true),
		UniqueFilename: api.Bool(true),
		UseFilename:    api.Bool(true),
	})

	if err != nil {
		return nil, fmt.Errorf("upload failed: %v", err)
	}

	return &UploadResult{
		PublicID:  result.PublicID,
		URL:       result.URL,
		SecureURL: result.SecureURL,
		Format:    result.Format,
		Bytes:     result.Bytes,
	}, nil
}

// DeleteFile removes an image by public id.
func DeleteFile(publicID string) error {
	if cld == nil {
		return fmt.Errorf("cloudinary not initialized")
	}

	ctx := context.Background()
	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})

	return err
}

// ThumbnailURL derives a 400x400 fill-crop variant of an uploaded
// image without re-uploading anything.
func ThumbnailURL(secureURL string) string {
	return strings.Replace(secureURL, "/upload/", "/upload/c_fill,w_400,h_400,q_auto/", 1)
}

func generateFilename(originalName, folder string) string {
	ext := filepath.Ext(originalName)
	name := strings.TrimSuffix(originalName, ext)

	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ToLower(name)

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("%s_%d", name, timestamp)

	return filename
}

// ValidateImage rejects oversized or non-image uploads.
func ValidateImage(file *multipart.FileHeader) error {
	// Max 5MB
	if file.Size > 5*1024*1024 {
		return fmt.Errorf("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

	valid := false
	for _, allowedExt := range allowed {
		if ext == allowedExt {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("invalid file type. Allowed: jpg, jpeg, png, gif, webp, svg")
	}

	return nil
}
