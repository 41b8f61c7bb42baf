package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/staffpay/staffpay-backend-go/internal/pkg/storage"
)

const profilePhotoMaxDim = 512

type FileService interface {
	// UploadProfilePhoto stores a staff profile photo and returns its
	// public URL. Images larger than 512px on either side are scaled down.
	UploadProfilePhoto(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadProfilePhoto(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	// Validate file extension
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}

	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	resized, err := resizePhoto(buffer)
	if err != nil {
		return "", err
	}

	// Output is always JPEG after resizing
	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s.jpg", userID, uniqueID)
	path := filepath.Join("photos", userID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(resized), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}

	return s.storage.GetURL(ctx, uploadedPath, 0*time.Second)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// resizePhoto decodes the image, scales it down to fit profilePhotoMaxDim
// and re-encodes as JPEG.
func resizePhoto(buffer []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > profilePhotoMaxDim || height > profilePhotoMaxDim {
		scale := float64(profilePhotoMaxDim) / float64(width)
		if height > width {
			scale = float64(profilePhotoMaxDim) / float64(height)
		}
		newWidth := int(float64(width) * scale)
		newHeight := int(float64(height) * scale)

		scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return buf.Bytes(), nil
}
