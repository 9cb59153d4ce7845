package handler

import (
	"github.com/radhian/price-upload-system/infra/locker"
	usecase "github.com/radhian/price-upload-system/usecase/priceupload"
)

type PriceUploadHandler struct {
	Usecase usecase.PriceUploadUsecase
	Locker  *locker.Locker
	// UploadDir confines UploadPrices to files below it. Empty disables
	// uploads over HTTP.
	UploadDir string
}

func NewPriceUploadHandler(uc usecase.PriceUploadUsecase, l *locker.Locker) *PriceUploadHandler {
	if l == nil {
		l = locker.New()
	}
	return &PriceUploadHandler{Usecase: uc, Locker: l}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
