package controllers

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // device-local store
	"github.com/labstack/gommon/log"

	"github.com/jaguilar/cobranza-sync/consts"
	"github.com/jaguilar/cobranza-sync/handler"
	"github.com/jaguilar/cobranza-sync/infra/db/dao"
	"github.com/jaguilar/cobranza-sync/infra/db/model"
	"github.com/jaguilar/cobranza-sync/infra/locker"
	"github.com/jaguilar/cobranza-sync/infra/remote"
	"github.com/jaguilar/cobranza-sync/middlewares"
	paymentUsecase "github.com/jaguilar/cobranza-sync/usecase/payment"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(dbPath, apiBaseURL, apiToken string) {
	if dbPath == "" {
		dbPath = consts.DefaultDBPath
	}

	var err error
	a.DB, err = gorm.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Cannot open local database %s: %v", dbPath, err)
	}
	log.Infof("Local database ready at %s", dbPath)

	a.DB.AutoMigrate(
		&model.StorageEntry{},
		&model.SyncRunLog{},
	)

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes(apiBaseURL, apiToken)
}

func (a *App) initializeRoutes(apiBaseURL, apiToken string) {
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	submitter := remote.NewClient(apiBaseURL, apiToken)
	uc := paymentUsecase.NewPaymentUsecase(dao.NewDaoMethod(a.DB), submitter, locker.New())
	h := handler.NewPaymentHandler(uc)
	RegisterPaymentRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = consts.DefaultPort
	}

	log.Infof("Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
