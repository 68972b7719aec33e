package domain

import "context"

// Reporter recebe o resultado de cada worker concluído.
//
// Implementações podem escrever em log, Redis, Prometheus, memória, etc.
// O worker trata erro como best-effort (não afeta a reserva já feita).
// Uma chamada deve ser limitada no tempo: o worker espera o retorno.
type Reporter interface {
	Report(ctx context.Context, res Result) error
}
