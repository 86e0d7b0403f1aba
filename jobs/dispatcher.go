// jobs/dispatcher.go — enqueue tasks
package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskImageDerivatives = "image:derivatives"

// ImageDerivativesPayload identifies the product whose uploaded image
// needs derived variants.
type ImageDerivativesPayload struct {
	ProductID uint `json:"product_id"`
}

func NewImageDerivativesTask(productID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(ImageDerivativesPayload{ProductID: productID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskImageDerivatives,
		payload,
		asynq.MaxRetry(5),
		asynq.Timeout(2*time.Minute),
	), nil
}
