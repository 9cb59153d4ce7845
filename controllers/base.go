package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"

	"github.com/radhian/price-upload-system/config"
	"github.com/radhian/price-upload-system/handler"
	"github.com/radhian/price-upload-system/infra/db"
	"github.com/radhian/price-upload-system/infra/db/dao"
	"github.com/radhian/price-upload-system/infra/locker"
	"github.com/radhian/price-upload-system/infra/logger"
	priceUploadUsecase "github.com/radhian/price-upload-system/usecase/priceupload"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
	Config *config.Config
}

func (a *App) Initialize(cfg *config.Config) error {
	a.Config = cfg

	lvl, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	log.Infof("DB Config - Driver: %q, Host: %q, Port: %d, User: %q, Name: %q",
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Name)

	a.DB, err = db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("cannot connect to database %s: %w", cfg.Database.Name, err)
	}
	log.Infof("We are connected to the database %s", cfg.Database.Name)

	a.Router = mux.NewRouter().StrictSlash(true)
	return a.initializeRoutes()
}

func (a *App) initializeRoutes() error {
	a.Router.Use(requestLogMiddleware)
	h, err := newPriceUploadHandler(a.DB, a.Config, nil)
	if err != nil {
		return err
	}
	RegisterPriceRoutes(a.Router, h)
	return nil
}

// newPriceUploadHandler wires the upload pipeline with its own logger at the
// configured level. A nil out keeps gommon's default output.
func newPriceUploadHandler(conn *gorm.DB, cfg *config.Config, out io.Writer) (*handler.PriceUploadHandler, error) {
	l, err := logger.New("price-upload", cfg.Log.Level, out)
	if err != nil {
		return nil, err
	}
	uc := priceUploadUsecase.NewPriceUploadUsecase(dao.NewDaoMethod(conn), l)
	h := handler.NewPriceUploadHandler(uc, locker.New())
	h.UploadDir = cfg.Upload.Dir
	return h, nil
}

func (a *App) RunServer() error {
	addr := ":" + a.Config.Server.Port
	log.Infof("Server starting on port %v", a.Config.Server.Port)
	return http.ListenAndServe(addr, a.Router)
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Infof("[HTTP] %s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
