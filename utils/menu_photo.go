package utils

import (
	"net/url"
	"strings"

	"github.com/dendisetiawann/kejora-frontend/config"
	"github.com/dendisetiawann/kejora-frontend/models"
)

const menuPhotoPlaceholder = "/images/menu-placeholder.svg"

// ResolveMenuPhoto turns the upstream photo reference into a displayable
// URL. Absolute URLs pass through, relative paths are rooted at the image
// base's storage path, and a missing photo falls back to the placeholder.
func ResolveMenuPhoto(menu models.Menu) string {
	if menu.Photo == nil || strings.TrimSpace(*menu.Photo) == "" {
		return menuPhotoPlaceholder
	}

	photo := strings.TrimSpace(*menu.Photo)
	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return photo
	}

	trimmed := strings.TrimLeft(photo, "/")
	if !strings.HasPrefix(trimmed, "storage/") {
		trimmed = "storage/" + trimmed
	}

	base := normalizeImageBase()
	if base == "" {
		return "/" + trimmed
	}
	return base + "/" + trimmed
}

// normalizeImageBase strips a trailing /api segment so photo paths resolve
// against the host root rather than the API prefix.
func normalizeImageBase() string {
	raw := strings.TrimSpace(config.AppConfig.ImageBaseURL)
	if raw == "" {
		raw = strings.TrimSpace(config.AppConfig.APIBaseURL)
	}
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		trimmed := strings.TrimRight(raw, "/")
		return strings.TrimSuffix(trimmed, "/api")
	}

	pathname := strings.TrimRight(parsed.Path, "/")
	pathname = strings.TrimSuffix(pathname, "/api")
	return strings.TrimRight(parsed.Scheme+"://"+parsed.Host+pathname, "/")
}
