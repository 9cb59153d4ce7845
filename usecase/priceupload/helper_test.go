package priceupload

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jinzhu/gorm"

	"github.com/radhian/price-upload-system/infra/db/dao"
	"github.com/radhian/price-upload-system/infra/db/dbtest"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
	errs  []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func newTestUsecase(t *testing.T) (*priceUploadUsecase, *gorm.DB, *recordingLogger) {
	t.Helper()
	conn := dbtest.Open(t)
	logger := &recordingLogger{}
	uc := NewPriceUploadUsecase(dao.NewDaoMethod(conn), logger).(*priceUploadUsecase)
	return uc, conn, logger
}
