package model

import "time"

type FAQ struct {
	DTO
	Question string `gorm:"size:500;not null" json:"question"`
	Answer   string `gorm:"size:2000;not null" json:"answer"`
	Keyword  string `gorm:"size:200;not null" json:"keyword"`
}

type FAQInput struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required,max=2000"`
	Keyword  string `json:"keyword" validate:"required,max=200"`
}

type AskInput struct {
	Question string `json:"question"`
}

// MailOutbox holds composed notification mails. Delivery is out of scope for this service.
type MailOutbox struct {
	DTO
	Recipient string     `gorm:"size:100;index;not null" json:"recipient"`
	Subject   string     `gorm:"size:200" json:"subject"`
	Kind      string     `gorm:"size:40;index" json:"kind"`
	Message   []byte     `json:"-"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}
