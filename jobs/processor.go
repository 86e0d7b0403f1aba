// jobs/processor.go — run tasks from the queue
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/utils"
)

type ImageProcessor struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewImageProcessor(db *gorm.DB, rdb *redis.Client) *ImageProcessor {
	return &ImageProcessor{db: db, rdb: rdb}
}

// ProcessTask derives the thumbnail variant for a product image and
// stores its URL on the product row. Runs after every image upload.
func (p *ImageProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ImageDerivativesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	var product models.Product
	if err := p.db.WithContext(ctx).First(&product, payload.ProductID).Error; err != nil {
		return fmt.Errorf("product %d: %w", payload.ProductID, err)
	}

	if product.ImageURL == nil || *product.ImageURL == "" {
		// Image removed between upload and processing, nothing to do.
		return nil
	}

	thumb := utils.ThumbnailURL(*product.ImageURL)
	if err := p.db.WithContext(ctx).Model(&product).Update("thumbnail_url", thumb).Error; err != nil {
		return fmt.Errorf("save thumbnail for product %d: %w", payload.ProductID, err)
	}

	// Drop the cached storefront payload so the new derivative shows up.
	if p.rdb != nil {
		p.rdb.Del(ctx, fmt.Sprintf("product:%d", product.ID))
	}

	log.Printf("Generated image derivatives for product %d", product.ID)
	return nil
}
