package main

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // device-local store
	"github.com/labstack/gommon/log"

	"github.com/jaguilar/cobranza-sync/consts"
	"github.com/jaguilar/cobranza-sync/handler"
	"github.com/jaguilar/cobranza-sync/infra/db/dao"
	"github.com/jaguilar/cobranza-sync/infra/db/model"
	"github.com/jaguilar/cobranza-sync/infra/locker"
	"github.com/jaguilar/cobranza-sync/infra/remote"
	paymentUsecase "github.com/jaguilar/cobranza-sync/usecase/payment"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startSyncWorker(h *handler.PaymentHandler, workerID int) {
	for {
		ctx := context.Background()
		if err := h.ScheduledSync(ctx); err != nil {
			log.Errorf("[Worker %d] sync error: %s", workerID, err.Error())
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig, apiBaseURL, apiToken string) {
	var wg sync.WaitGroup

	submitter := remote.NewClient(apiBaseURL, apiToken)
	uc := paymentUsecase.NewPaymentUsecase(dao.NewDaoMethod(a.DB), submitter, a.Locker)
	h := handler.NewPaymentHandler(uc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Infof("spawn [Worker %d]", workerID)
			cfg.startSyncWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func (a *App) Initialize(dbPath string) {
	if dbPath == "" {
		dbPath = consts.DefaultDBPath
	}

	var err error
	a.DB, err = gorm.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Cannot open local database %s: %v", dbPath, err)
	}

	a.DB.AutoMigrate(
		&model.StorageEntry{},
		&model.SyncRunLog{},
	)

	a.Locker = locker.New()
}

func syncInterval() time.Duration {
	if raw := os.Getenv("SYNC_INTERVAL_SEC"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return consts.DefaultSyncIntervalSec * time.Second
}

func main() {
	app := App{}
	app.Initialize(os.Getenv("DB_PATH"))

	app.startCronWorker(CronWorkerConfig{
		Workers:  consts.DefaultWorkerNumber,
		Interval: syncInterval(),
	}, os.Getenv("API_BASE_URL"), os.Getenv("API_TOKEN"))
}
