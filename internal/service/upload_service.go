package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/config"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadedFile describes a stored image.
type UploadedFile struct {
	Dosya string `json:"dosya"`
	URL   string `json:"url"`
	Boyut int64  `json:"boyut"`
}

// UploadService stores incoming images on local disk and optionally mirrors
// them to S3 using Signature V4 requests.
type UploadService struct {
	dir         string
	maxFileSize int64
	maxFiles    int
	s3          config.S3Config
}

// NewUploadService creates the upload directory if needed and returns the
// service.
func NewUploadService(cfg *config.Config) (*UploadService, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{
		dir:         cfg.Upload.Dir,
		maxFileSize: cfg.Upload.MaxFileSize,
		maxFiles:    cfg.Upload.MaxFiles,
		s3:          cfg.S3,
	}, nil
}

// SaveImages validates and stores a batch of multipart image files. The whole
// batch is rejected on the first invalid file.
func (s *UploadService) SaveImages(ctx context.Context, files []*multipart.FileHeader) ([]UploadedFile, error) {
	if len(files) == 0 {
		return nil, utils.ValidationErrors{}.Add("resimler", "En az bir dosya yükleyin")
	}
	if len(files) > s.maxFiles {
		return nil, utils.ValidationErrors{}.Add("resimler", fmt.Sprintf("En fazla %d dosya yüklenebilir", s.maxFiles))
	}

	saved := make([]UploadedFile, 0, len(files))
	for _, fh := range files {
		uf, err := s.saveOne(ctx, fh)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *uf)
	}
	return saved, nil
}

func (s *UploadService) saveOne(ctx context.Context, fh *multipart.FileHeader) (*UploadedFile, error) {
	if fh.Size > s.maxFileSize {
		return nil, utils.ValidationErrors{}.Add(fh.Filename, fmt.Sprintf("Dosya boyutu %d MB'ı aşamaz", s.maxFileSize/(1024*1024)))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, utils.ValidationErrors{}.Add(fh.Filename, fmt.Sprintf("Dosya boyutu %d MB'ı aşamaz", s.maxFileSize/(1024*1024)))
	}

	// Content type from actual bytes, not the client-supplied header.
	contentType := http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, utils.ValidationErrors{}.Add(fh.Filename, "Sadece JPEG, PNG ve WebP formatları desteklenir")
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	url := "/uploads/" + name
	if s.s3Enabled() {
		if s3URL, err := s.putObject(ctx, "uploads/"+name, data, contentType); err != nil {
			log.Error().Err(err).Str("dosya", name).Msg("S3 upload failed, serving local copy")
		} else {
			url = s3URL
		}
	}

	log.Info().Str("dosya", name).Int64("boyut", fh.Size).Msg("image stored")
	return &UploadedFile{Dosya: name, URL: url, Boyut: int64(len(data))}, nil
}

// Delete removes a previously uploaded file from local disk. The name must be
// a bare filename, path traversal is rejected.
func (s *UploadService) Delete(name string) error {
	if name == "" || name != filepath.Base(name) {
		return utils.ValidationErrors{}.Add("dosya", "Geçersiz dosya adı")
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return utils.ErrNotFound
	}
	return err
}

func (s *UploadService) s3Enabled() bool {
	return s.s3.AccessKeyID != "" && s.s3.SecretAccessKey != "" && s.s3.Bucket != ""
}

// putObject uploads an object with an AWS Signature V4 signed PUT request.
func (s *UploadService) putObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	url := s.objectURL(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	payloadHash := sha256Hex(data)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(data)))
	req.Header.Set("Host", fmt.Sprintf("%s.s3.%s.amazonaws.com", s.s3.Bucket, s.s3.Region))
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)
	req.Header.Set("Authorization", s.signRequest(req, payloadHash, amzDate, dateStamp))

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("S3 upload failed: %s", string(body))
	}
	return url, nil
}

// signRequest creates the AWS Signature V4 authorization header.
func (s *UploadService) signRequest(req *http.Request, payloadHash, amzDate, dateStamp string) string {
	service := "s3"

	canonicalURI := req.URL.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}

	signedHeaders := []string{"content-type", "host", "x-amz-content-sha256", "x-amz-date"}
	sort.Strings(signedHeaders)

	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(h)
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}
	signedHeadersStr := strings.Join(signedHeaders, ";")

	canonicalRequest := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		req.Method,
		canonicalURI,
		"",
		canonicalHeaders.String(),
		signedHeadersStr,
		payloadHash,
	)

	algorithm := "AWS4-HMAC-SHA256"
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.s3.Region, service)
	stringToSign := fmt.Sprintf("%s\n%s\n%s\n%s",
		algorithm,
		amzDate,
		credentialScope,
		sha256Hex([]byte(canonicalRequest)),
	)

	kDate := hmacSHA256([]byte("AWS4"+s.s3.SecretAccessKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.s3.Region))
	kService := hmacSHA256(kRegion, []byte(service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))
	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm,
		s.s3.AccessKeyID,
		credentialScope,
		signedHeadersStr,
		signature,
	)
}

func (s *UploadService) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3.Bucket, s.s3.Region, key)
}

func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
