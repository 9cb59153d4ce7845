package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"

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
	Locker *locker.Locker
	Cron   *cron.Cron
}

func (a *App) Initialize(cfg *config.Config) {
	lvl, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("config validation: %v", err)
	}
	log.SetLevel(lvl)

	a.DB, err = db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.Database.Name, err)
	}
	log.Infof("We are connected to the database %s", cfg.Database.Name)

	a.Locker = locker.New()
	a.Cron = cron.New(cron.WithSeconds())
}

// registerSchedules adds one cron entry per configured upload.
func (a *App) registerSchedules(ctx context.Context, cfg *config.Config) error {
	l, err := logger.New("price-upload", cfg.Log.Level, nil)
	if err != nil {
		return err
	}
	uc := priceUploadUsecase.NewPriceUploadUsecase(dao.NewDaoMethod(a.DB), l)
	h := handler.NewPriceUploadHandler(uc, a.Locker)

	for _, job := range cfg.Schedules {
		job := job
		if _, err := a.Cron.AddFunc(job.Cron, func() {
			res, err := h.ScheduledUpload(ctx, job)
			if err != nil {
				log.Errorf("[Schedule %s] error: %s", job.Name, err.Error())
				return
			}
			log.Infof("[Schedule %s] success: %d records, %d inserted, %d updated",
				job.Name, res.Records, res.Summary.Inserted, res.Summary.Updated)
		}); err != nil {
			return err
		}
		log.Infof("[Schedule %s] registered %q for %s", job.Name, job.Cron, job.Identity())
	}
	return nil
}

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}
	if len(cfg.Schedules) == 0 {
		log.Fatal("no schedules configured")
	}

	app := App{}
	app.Initialize(cfg)
	defer app.DB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.registerSchedules(ctx, cfg); err != nil {
		log.Fatalf("register schedules: %v", err)
	}
	app.Cron.Start()
	log.Info("scheduler started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	<-app.Cron.Stop().Done()
	log.Info("scheduler stopped")
}
