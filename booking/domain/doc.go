// Package domain define contratos e tipos de domínio para reserva concorrente de ingressos.
//
// Este pacote não depende de implementações concretas (mutex, semáforo, Redis...).
// A intenção é permitir testes de unidade puros e desacoplar as regras de reserva
// dos detalhes de infraestrutura.
package domain
