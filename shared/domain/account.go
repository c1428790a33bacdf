package domain

import "time"

type Account struct {
	Id        AccountId `json:"id"`
	Email     Email     `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Credentials struct {
	Email    Email
	Password Password
}
