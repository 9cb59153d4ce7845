package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
)

func (h *PriceUploadHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	share := r.URL.Query().Get("share")
	currency := r.URL.Query().Get("currency")
	if strings.TrimSpace(currency) == "" {
		currency = consts.DefaultCurrency
	}
	if err := validateIdentity(share, currency); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	identity := entity.CommodityIdentity{ShareName: share, CurrencyName: currency}
	prices, err := h.Usecase.ListPrices(identity)
	if err != nil {
		log.Errorf("[GetPrices] Failed to list prices for %s: %v", identity, err)
		w.WriteHeader(statusForError(err))
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to get prices",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   prices,
	})
}
