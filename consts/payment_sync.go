package consts

const (
	// Storage key holding the serialized pending-payment list.
	PendingPaymentsKey = "pagos_pendientes"

	// Remote endpoint for single payment registration.
	EndpointRegisterPayment = "/AgregarPagoCliente"

	// Locker key guarding the drain, at most one sync per process.
	DrainLockKey = "sincronizar_pagos"

	// Sync run status codes
	StatusRunning  = 2
	StatusFinished = 3

	// ID generation strategies
	IDStrategyHash     = "hash"
	IDStrategyFallback = "fallback"

	// Default config
	DefaultPort            = "8080"
	DefaultDBPath          = "cobranza.db"
	DefaultSyncIntervalSec = 60
	DefaultWorkerNumber    = 1
	RemoteTimeoutSec       = 10
)
