package controllers

import (
	"github.com/gorilla/mux"

	"github.com/radhian/price-upload-system/handler"
)

func RegisterPriceRoutes(router *mux.Router, h *handler.PriceUploadHandler) {
	router.HandleFunc("/upload_prices", h.UploadPrices).Methods("POST")
	router.HandleFunc("/get_prices", h.GetPrices).Methods("GET")
}
