package appointment

type PhoneNumber struct {
	Type  string `json:"type"`
	Phone string `json:"phone"`
}

type Customer struct {
	ID           string        `json:"id"`
	FirstName    string        `json:"firstName,omitempty"`
	LastName     string        `json:"lastName,omitempty"`
	Email        string        `json:"email,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
}

type Vehicle struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`
	LicencePlate string `json:"licencePlate,omitempty"`
}

// Appointment is the engine-side view, including provider internals.
type Appointment struct {
	AppointmentID         string    `json:"appointmentId"`
	ProviderAppointmentID string    `json:"providerAppointmentId,omitempty"`
	AppointmentProvider   Provider  `json:"appointmentProvider,omitempty"`
	DealerID              string    `json:"dealerId"`
	OrderID               string    `json:"orderId,omitempty"`
	AppointmentDate       string    `json:"appointmentDate"`
	Status                string    `json:"status,omitempty"`
	Locale                string    `json:"locale,omitempty"`
	LicencePlate          string    `json:"licencePlate,omitempty"`
	Services              []string  `json:"services,omitempty"`
	Comment               string    `json:"comment,omitempty"`
	SentByEmail           bool      `json:"sentByEmail"`
	SentBySMS             bool      `json:"sentBySMS"`
	Customer              *Customer `json:"customer,omitempty"`
	Vehicle               *Vehicle  `json:"vehicle,omitempty"`
}

// ClientAppointment is an Appointment without provider internals.
type ClientAppointment struct {
	AppointmentID   string    `json:"appointmentId"`
	DealerID        string    `json:"dealerId"`
	OrderID         string    `json:"orderId,omitempty"`
	AppointmentDate string    `json:"appointmentDate"`
	Status          string    `json:"status,omitempty"`
	Locale          string    `json:"locale,omitempty"`
	LicencePlate    string    `json:"licencePlate,omitempty"`
	Services        []string  `json:"services,omitempty"`
	Comment         string    `json:"comment,omitempty"`
	SentByEmail     bool      `json:"sentByEmail"`
	SentBySMS       bool      `json:"sentBySMS"`
	Customer        *Customer `json:"customer,omitempty"`
	Vehicle         *Vehicle  `json:"vehicle,omitempty"`
}

type Booking struct {
	DealerID            string    `json:"dealerId"`
	ShopIdentifier      string    `json:"shopIdentifier"`
	AppointmentProvider Provider  `json:"appointmentProvider"`
	AppointmentDate     string    `json:"appointmentDate"`
	OrderID             string    `json:"orderId,omitempty"`
	Locale              string    `json:"locale,omitempty"`
	LicencePlate        string    `json:"licencePlate,omitempty"`
	Services            []string  `json:"services,omitempty"`
	Comment             string    `json:"comment,omitempty"`
	SentByEmail         bool      `json:"sentByEmail"`
	SentBySMS           bool      `json:"sentBySMS"`
	Customer            *Customer `json:"customer"`
	Vehicle             *Vehicle  `json:"vehicle,omitempty"`
}

type BookingResult struct {
	AppointmentID string `json:"appointmentId"`
}

type Update struct {
	AppointmentID   string    `json:"appointmentId"`
	AppointmentDate string    `json:"appointmentDate,omitempty"`
	LicencePlate    string    `json:"licencePlate,omitempty"`
	Locale          string    `json:"locale,omitempty"`
	Customer        *Customer `json:"customer,omitempty"`
}

type ProviderSynch struct {
	ProviderAppointmentID string `json:"providerAppointmentId"`
	AppointmentDate       string `json:"appointmentDate"`
}

type Cancellation struct {
	AppointmentID       string   `json:"appointmentId"`
	DealerID            string   `json:"dealerId"`
	AppointmentProvider Provider `json:"appointmentProvider"`
	Comment             string   `json:"comment"`
}

type Completion struct {
	AppointmentID string `json:"appointmentId"`
	Comment       string `json:"comment"`
}

// Range filters appointment listings; empty fields are not sent.
type Range struct {
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
	Status   string `json:"status,omitempty"`
}

type ListByIDs struct {
	Range
	IDs []string `json:"ids"`
}
