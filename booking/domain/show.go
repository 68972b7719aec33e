package domain

import "strconv"

// ShowID identifica uma sessão. Os IDs começam em 1.
type ShowID int

func (id ShowID) String() string { return strconv.Itoa(int(id)) }

// WorkerID identifica um solicitante (um worker). Os IDs começam em 1.
type WorkerID int

func (id WorkerID) String() string { return strconv.Itoa(int(id)) }

// Outcome é o resultado terminal de uma tentativa de reserva.
type Outcome int

const (
	// Sold: um ingresso foi vendido; Result.Remaining traz a contagem pós-decremento.
	Sold Outcome = iota
	// SoldOut: a sessão não tinha ingressos. Resultado normal, não é erro.
	SoldOut
	// Rejected: o worker não conseguiu vaga no árbitro (timeout ou ctx cancelado).
	// Nada foi alterado.
	Rejected
	// Abandoned: o worker foi descartado (sessão inválida ou falha interna).
	Abandoned
)

func (o Outcome) String() string {
	switch o {
	case Sold:
		return "sold"
	case SoldOut:
		return "sold_out"
	case Rejected:
		return "rejected"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Result é o que o worker entrega ao Reporter quando chega em Completed.
type Result struct {
	Worker  WorkerID
	Show    ShowID
	Outcome Outcome
	// Remaining só tem significado quando Outcome == Sold.
	Remaining int
	// Err é preenchido para Rejected e Abandoned.
	Err error
}

// Show é o contrato que o worker enxerga de uma sessão: um lock exclusivo
// próprio (um por sessão, nunca compartilhado) e a seção crítica.
type Show interface {
	Lock()
	Unlock()
	ID() ShowID
	// TryReserve só pode ser chamado com o lock da sessão em mãos.
	// Retorna Sold e a contagem pós-decremento, ou SoldOut sem alterar nada.
	TryReserve() (Outcome, int)
}

// Catalog resolve um ShowID para a sessão correspondente.
type Catalog interface {
	Show(id ShowID) (Show, bool)
}

// ShowStatus é uma foto de uma sessão, tirada com o lock dela em mãos.
type ShowStatus struct {
	ID        ShowID
	Capacity  int
	Remaining int
}

// Booked é quantos ingressos já foram vendidos.
func (s ShowStatus) Booked() int { return s.Capacity - s.Remaining }
