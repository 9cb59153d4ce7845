package handler

import (
	"context"
	"fmt"

	"github.com/radhian/price-upload-system/entity"
)

// ScheduledUpload runs one cron entry. Overlapping runs for the same
// identity are skipped.
func (h *PriceUploadHandler) ScheduledUpload(ctx context.Context, job entity.ScheduledUpload) (entity.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return entity.UploadResult{}, err
	}

	identity := job.Identity()
	if !h.Locker.TryLock(identity.String()) {
		return entity.UploadResult{}, fmt.Errorf("upload for %s still running, skipped", identity)
	}
	defer h.Locker.Unlock(identity.String())

	return h.Usecase.UploadFile(job.File, identity, job.Options())
}
