package controllers

import (
	"github.com/jaguilar/cobranza-sync/handler"

	"github.com/gorilla/mux"
)

func RegisterPaymentRoutes(router *mux.Router, h *handler.PaymentHandler) {
	router.HandleFunc("/registrar_pago", h.RegisterPayment).Methods("POST")
	router.HandleFunc("/pagos_pendientes", h.ListPendingPayments).Methods("GET")
	router.HandleFunc("/total_pendiente", h.PendingTotalByCredit).Methods("GET")
	router.HandleFunc("/sincronizar", h.SyncPendingPayments).Methods("POST")
	router.HandleFunc("/sync_result", h.GetSyncResult).Methods("GET")
}
