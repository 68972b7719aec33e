// Package application contém os casos de uso da reserva concorrente:
// o árbitro de admissão e o worker de reserva.
//
// Ele depende apenas do pacote domain e não conhece mutex, channel ou Redis.
// Ex.: Worker.Run(ctx) percorre a máquina de estados e devolve um domain.Result.
package application
