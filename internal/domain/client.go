package domain

import "time"

type Client struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Status    ClientStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
