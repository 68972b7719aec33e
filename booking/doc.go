// Package booking monta o núcleo de reserva concorrente de ingressos.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de implementação)
//   - application: casos de uso (admissão com timeout, worker de reserva)
//   - infra: implementações concretas (semáforo, inventário por sessão, reporters)
//   - booking (este pacote): System, que liga tudo, despacha workers e faz o teardown
//
// Fluxo de um worker:
//
//   1) Escolhe a sessão (Selector externo)
//   2) Adquire uma vaga no árbitro global (limite de concorrência)
//   3) Adquire o lock da sessão escolhida (um lock por sessão, nunca global)
//   4) Check-then-decrement do contador, libera o lock, libera a vaga
//   5) Entrega o resultado ao Reporter
//
// O binário cmd/booking lê a configuração de variáveis de ambiente
// (BOOKING_USERS, BOOKING_TICKETS, BOOKING_SHOWS, BOOKING_CONCURRENCY, ...).
package booking
