package response

import "appointment-gateway/internal/domain/appointment"

type BookingResponse struct {
	AppointmentID string `json:"appointmentId"`
}

type AppointmentListResponse []appointment.ClientAppointment

func FromClientList(list []appointment.ClientAppointment) AppointmentListResponse {
	if list == nil {
		return AppointmentListResponse{}
	}
	return list
}
