package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"volunteermatch-backend/config"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Image side-channel helpers. Profile images are stored as bytes next to the
// entity row but never travel with list responses; getDto/:id serves them
// base64-encoded, with a redis cache in front when redis is up.

func bindJSONString(payload string, out interface{}) error {
	dec := json.NewDecoder(strings.NewReader(payload))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

// readImagePart reads the optional image file from a multipart signup. It
// rejects non-image MIME types and names the stored image with a fresh uuid.
func readImagePart(c *gin.Context, field string) ([]byte, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", nil // no image attached
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("only image files are allowed")
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	return data, uuid.New().String(), nil
}

func imageCacheKey(kind string, id uint) string {
	return fmt.Sprintf("%s:dto:%d", kind, id)
}

func encodeImageDTO(id uint, name string, image []byte) models.ImageDTO {
	return models.ImageDTO{
		ID:    id,
		Name:  name,
		Image: base64.StdEncoding.EncodeToString(image),
	}
}

func cachedImageDTO(key string) (models.ImageDTO, bool) {
	var dto models.ImageDTO
	if database.Redis == nil {
		return dto, false
	}
	raw, err := database.Redis.Get(context.Background(), key).Result()
	if err != nil {
		return dto, false
	}
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return dto, false
	}
	return dto, true
}

func cacheImageDTO(key string, dto models.ImageDTO) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), key, raw, config.AppConfig.ImageCacheTTL)
}
