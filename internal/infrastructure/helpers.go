package infrastructure

import "github.com/matbakh-tech/go-backend/pkg/e"

// GetExtensionFromMIME возвращает расширение файла для MIME-типа
// изображения. Для неподдерживаемого типа возвращается
// e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	}

	return "", e.ErrUnsupportedMediaType
}
