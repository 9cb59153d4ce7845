package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/labstack/gommon/log"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
	usecase "github.com/radhian/price-upload-system/usecase/priceupload"
)

func (h *PriceUploadHandler) UploadPrices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.UploadPricesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.Currency) == "" {
		req.Currency = consts.DefaultCurrency
	}
	path, err := validateUploadPricesRequest(req, h.UploadDir)
	if err != nil {
		log.Warnf("[UploadPrices] Invalid input: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	identity := entity.CommodityIdentity{ShareName: req.Share, CurrencyName: req.Currency}
	opts := entity.ReadOptions{Header: true, StrictDates: req.StrictDates}
	if req.Header != nil {
		opts.Header = *req.Header
	}

	if !h.Locker.TryLock(identity.String()) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: fmt.Sprintf("an upload for %s is already running", identity),
		})
		return
	}
	defer h.Locker.Unlock(identity.String())

	res, err := h.Usecase.UploadFile(path, identity, opts)
	if err != nil {
		log.Errorf("[UploadPrices] Upload of %s for %s failed: %v", req.FilePath, identity, err)
		w.WriteHeader(statusForError(err))
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
			Data:    res,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   res,
	})
}

func statusForError(err error) int {
	var resErr *entity.ResolutionError
	var storeErr *entity.StoreError
	switch {
	case errors.Is(err, usecase.ErrInputFile):
		return http.StatusBadRequest
	case errors.As(err, &resErr):
		if resErr.Kind == "connection" {
			return http.StatusServiceUnavailable
		}
		return http.StatusUnprocessableEntity
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func validateIdentity(share, currency string) error {
	if strings.TrimSpace(share) == "" {
		return errors.New("share must be specified")
	}
	if money.GetCurrency(currency) == nil {
		return fmt.Errorf("currency %q is not an ISO 4217 code", currency)
	}
	return nil
}

// validateUploadPricesRequest checks the request and returns the price file
// path resolved inside uploadDir. Relative paths are taken relative to
// uploadDir.
func validateUploadPricesRequest(req entity.UploadPricesRequest, uploadDir string) (string, error) {
	if req.FilePath == "" {
		return "", errors.New("file path is required")
	}
	path, err := resolveUploadPath(uploadDir, req.FilePath)
	if err != nil {
		return "", err
	}
	return path, validateIdentity(req.Share, req.Currency)
}

func resolveUploadPath(uploadDir, filePath string) (string, error) {
	if uploadDir == "" {
		return "", errors.New("uploads are disabled: no upload directory configured")
	}
	base, err := filepath.Abs(uploadDir)
	if err == nil {
		base, err = filepath.EvalSymlinks(base)
	}
	if err != nil {
		log.Errorf("[UploadPrices] Upload directory %s unavailable: %v", uploadDir, err)
		return "", errors.New("upload directory unavailable")
	}

	target := filePath
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("price file does not exist: %s", filePath)
		}
		return "", fmt.Errorf("price file %s cannot be read", filePath)
	}

	rel, err := filepath.Rel(base, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("price file %s is outside the upload directory", filePath)
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("price file %s is not a regular file", filePath)
	}
	return resolved, nil
}
