// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - ChanPool: semáforo baseado em channel, o árbitro de admissão global
//   - ShowInventory/Inventory: contador de ingressos por sessão com mutex próprio
//   - RandomSelector: escolha uniforme de sessão
//   - Reporters: memória, log (zap), Redis e Prometheus
package infra
