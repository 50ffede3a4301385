package models

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone"`
	City   string         `json:"city"`
	Status CustomerStatus `json:"status"`
}

type CustomerInput struct {
	Name   string
	Email  string
	Phone  string
	City   string
	Status CustomerStatus
}

type CustomerPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	City   *string
	Status *CustomerStatus
}

func (c Customer) Apply(patch CustomerPatch) Customer {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	return c
}
