package entity

type Subject struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}
