package services

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ThumbnailSize is the bounding box of a generated thumbnail
type ThumbnailSize struct {
	Width, Height int
	// Fill crops to the exact box; otherwise the image is fitted inside it
	Fill bool
}

// Thumbnail sizes per kind of picture
var (
	DevelopmentImageSize = ThumbnailSize{Width: 480, Height: 320, Fill: true}
	UnitTypeImageSize    = ThumbnailSize{Width: 320, Height: 240, Fill: true}
	LogoSize             = ThumbnailSize{Width: 240, Height: 120}
)

// SavedImage holds the public paths of a stored picture
type SavedImage struct {
	Original  string
	Thumbnail string
}

// ImageService handles image processing and storage
type ImageService struct {
	uploadDir string
}

func NewImageService(uploadDir string) *ImageService {
	// Ensure upload directory exists
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		_ = os.MkdirAll(uploadDir, 0755)
	}
	return &ImageService{
		uploadDir: uploadDir,
	}
}

// Save stores the original image under subDir and writes a thumbnail next to it
func (s *ImageService) Save(file multipart.File, header *multipart.FileHeader, subDir string, size ThumbnailSize) (*SavedImage, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return nil, validationError("formato de imagem não suportado (apenas JPG/PNG)")
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, validationError("não foi possível ler a imagem: %v", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}

	dir := filepath.Join(s.uploadDir, subDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório: %w", err)
	}

	name := uuid.New().String()
	originalName := name + ext
	thumbName := name + "_thumb" + ext

	if err := writeFile(filepath.Join(dir, originalName), func(w io.Writer) error {
		_, err := io.Copy(w, file)
		return err
	}); err != nil {
		return nil, fmt.Errorf("erro ao salvar imagem original: %w", err)
	}

	var thumb image.Image
	if size.Fill {
		thumb = imaging.Fill(img, size.Width, size.Height, imaging.Center, imaging.Lanczos)
	} else {
		thumb = imaging.Fit(img, size.Width, size.Height, imaging.Lanczos)
	}

	if err := writeFile(filepath.Join(dir, thumbName), func(w io.Writer) error {
		if ext == ".png" {
			return png.Encode(w, thumb)
		}
		return jpeg.Encode(w, thumb, &jpeg.Options{Quality: 85})
	}); err != nil {
		return nil, fmt.Errorf("erro ao salvar miniatura: %w", err)
	}

	prefix := "/uploads/" + subDir + "/"
	return &SavedImage{
		Original:  prefix + originalName,
		Thumbnail: prefix + thumbName,
	}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}
