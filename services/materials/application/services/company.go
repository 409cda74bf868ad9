package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ghuser/solarbom/pkg/config"
	materialsdomain "github.com/ghuser/solarbom/services/materials/domain"
)

// allowedLogoExts is the upload allow-list, matched case-insensitively.
var allowedLogoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// CompanyService holds the company identity stamped on every rendered
// document. The name is fixed at startup; the logo is the single piece of
// runtime-mutable state in the application, guarded here rather than in a
// global so renders always see a consistent snapshot.
type CompanyService struct {
	name       string
	uploadsDir string

	mu       sync.RWMutex
	logoPath string
}

// NewCompanyService creates the uploads directory and seeds the profile
// from configuration.
func NewCompanyService(cfg *config.Config) (*CompanyService, error) {
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &CompanyService{
		name:       cfg.CompanyName,
		uploadsDir: cfg.UploadsDir,
		logoPath:   cfg.LogoPath,
	}, nil
}

// Profile returns the company name and current logo path.
func (s *CompanyService) Profile() (name, logoPath string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name, s.logoPath
}

// SaveLogo validates the uploaded file's extension against the allow-list,
// writes it into the uploads directory, and makes it the logo for all
// subsequent renders. Returns the stored path.
func (s *CompanyService) SaveLogo(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedLogoExts[ext] {
		return "", fmt.Errorf("%w: %q", materialsdomain.ErrUnsupportedLogoType, ext)
	}

	path := filepath.Join(s.uploadsDir, "logo"+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create logo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write logo file: %w", err)
	}

	s.mu.Lock()
	s.logoPath = path
	s.mu.Unlock()
	return path, nil
}
