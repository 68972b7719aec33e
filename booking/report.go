package booking

import "ticket-booking/booking/domain"

// Report é o relatório final de uma execução.
type Report struct {
	Shows []domain.ShowStatus

	Users          int
	TotalCapacity  int
	TotalRemaining int
	TotalBooked    int
}

// BuildReport consolida a foto das sessões. users é quantos workers foram despachados.
func BuildReport(shows []domain.ShowStatus, users int) Report {
	r := Report{Shows: shows, Users: users}
	for _, s := range shows {
		r.TotalCapacity += s.Capacity
		r.TotalRemaining += s.Remaining
		r.TotalBooked += s.Booked()
	}
	return r
}

// SuccessRate é a porcentagem de workers que compraram um ingresso.
func (r Report) SuccessRate() float64 {
	if r.Users == 0 {
		return 0
	}
	return float64(r.TotalBooked) * 100 / float64(r.Users)
}

func (r Report) AllSoldOut() bool {
	return len(r.Shows) > 0 && r.TotalRemaining == 0
}
