package domain

import "errors"

var (
	// ErrInvalidConfig: contagens/teto não positivos na construção.
	ErrInvalidConfig = errors.New("booking: invalid configuration")
	// ErrInvalidShow: o Selector devolveu um ID fora do conjunto configurado.
	ErrInvalidShow = errors.New("booking: invalid show id")
	// ErrAdmissionTimeout: o worker não obteve vaga no árbitro a tempo.
	ErrAdmissionTimeout = errors.New("booking: admission wait expired")
	// ErrWorkerFault: pânico recuperado dentro do fluxo de um worker.
	ErrWorkerFault = errors.New("booking: worker fault")
	// ErrClosed: uso do sistema depois do teardown.
	ErrClosed = errors.New("booking: system closed")
	// ErrWorkersInFlight: teardown pedido com workers ainda em andamento.
	ErrWorkersInFlight = errors.New("booking: workers still in flight")
)
