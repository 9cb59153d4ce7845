package priceupload

import (
	"io"

	"github.com/radhian/price-upload-system/entity"
	"github.com/radhian/price-upload-system/infra/db/dao"
)

// Logger is the log sink the upload pipeline writes to. *log.Logger from
// github.com/labstack/gommon/log satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type PriceUploadUsecase interface {
	ReadBatch(r io.Reader, opts entity.ReadOptions) (entity.ReadResult, error)
	WriteBatch(batch entity.Batch, identity entity.CommodityIdentity) (entity.WriteSummary, error)
	UploadFile(path string, identity entity.CommodityIdentity, opts entity.ReadOptions) (entity.UploadResult, error)
	ListPrices(identity entity.CommodityIdentity) ([]entity.StoredPrice, error)
}

type priceUploadUsecase struct {
	dao    dao.DaoMethod
	logger Logger
}

func NewPriceUploadUsecase(d dao.DaoMethod, logger Logger) PriceUploadUsecase {
	return &priceUploadUsecase{dao: d, logger: logger}
}
