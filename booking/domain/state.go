package domain

// State é a etapa atual de um worker de reserva.
//
// Fluxo: Created -> AwaitingAdmission -> Admitted -> AwaitingShowLock ->
// InCriticalSection -> Completed. Completed é alcançado exatamente uma vez;
// não há retry nem reentrada.
type State int

const (
	Created State = iota
	AwaitingAdmission
	Admitted
	AwaitingShowLock
	InCriticalSection
	Completed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case AwaitingAdmission:
		return "awaiting_admission"
	case Admitted:
		return "admitted"
	case AwaitingShowLock:
		return "awaiting_show_lock"
	case InCriticalSection:
		return "in_critical_section"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}
