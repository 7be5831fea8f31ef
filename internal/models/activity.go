package models

import "time"

// Activity represents one recorded dashboard action
type Activity struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Resource  string    `json:"resource"`
	CreatedAt time.Time `json:"created_at"`
}
