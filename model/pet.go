package model

type Pet struct {
	DTO
	Name         string  `gorm:"size:50;not null" json:"name"`
	PetType      string  `gorm:"size:30;not null;index" json:"petType"`
	Breed        string  `gorm:"size:50" json:"breed"`
	Gender       string  `gorm:"size:10" json:"gender"`
	Age          int     `json:"age"`
	Weight       float64 `gorm:"type:decimal(5,2)" json:"weight"`
	MedicalNotes string  `gorm:"size:500" json:"medicalNotes"`
	PhotoURL     string  `gorm:"size:300" json:"photoUrl"`
	UserID       uint    `gorm:"index;not null" json:"userId"`
	User         *User   `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}

type PetInput struct {
	Name         string  `json:"name" validate:"required,max=50"`
	PetType      string  `json:"petType" validate:"required,max=30"`
	Breed        string  `json:"breed" validate:"omitempty,max=50"`
	Gender       string  `json:"gender" validate:"required,oneof=Male Female"`
	Age          int     `json:"age" validate:"min=0,max=50"`
	Weight       float64 `json:"weight" validate:"required,min=0.1,max=100"`
	MedicalNotes string  `json:"medicalNotes" validate:"omitempty,max=500"`
	PhotoURL     string  `json:"photoUrl" validate:"omitempty,max=300"`
}

type PetLookupFilter struct {
	Email   string `query:"email"`
	PetType string `query:"petType"`
}
