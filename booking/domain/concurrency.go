package domain

import "context"

// SlotPool representa a capacidade global de reservas simultâneas (o árbitro).
//
// A semântica é: Acquire bloqueia até conseguir uma vaga ou até o ctx encerrar.
// Ao adquirir, retorna uma função de release que deve ser chamada exatamente uma vez.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), ok bool)
}

// Selector escolhe a sessão alvo de um worker. A política (aleatória, fixa...)
// é externa ao núcleo; só se exige que devolva um ID do conjunto configurado.
type Selector interface {
	Select(worker WorkerID) ShowID
}

// SelectorFunc adapta uma função comum para Selector.
type SelectorFunc func(worker WorkerID) ShowID

func (f SelectorFunc) Select(worker WorkerID) ShowID { return f(worker) }
