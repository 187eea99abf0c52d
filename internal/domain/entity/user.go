package entity

import (
	"time"
)

type User struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url"`
	JoinedDate  time.Time `json:"joined_date"`
	LastLogin   time.Time `json:"last_login"`
}
