package model

// CatalogItem is the shape shared by service options and packages.
type CatalogItem struct {
	Name        string   `gorm:"size:100;not null" json:"name"`
	Slug        string   `gorm:"size:120;uniqueIndex" json:"slug"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	Features    []string `gorm:"type:json;serializer:json" json:"features"`
	PetType     string   `gorm:"size:20;not null;index" json:"petType"`
	ImageURLs   []string `gorm:"type:json;serializer:json" json:"imageUrls"`
	Count       int      `gorm:"not null" json:"count"`
}

type ServiceOption struct {
	DTO
	CatalogItem
}

type Package struct {
	DTO
	CatalogItem
}

type CatalogInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0,lte=100000"`
	Features    []string `json:"features" validate:"omitempty,dive,max=200"`
	PetType     string   `json:"petType" validate:"required"`
	ImageURLs   []string `json:"imageUrls" validate:"omitempty,dive,max=300"`
}

type CatalogFilter struct {
	Pagination
	Sorting
	Name     string   `query:"name"`
	PetType  string   `query:"petType"`
	MinPrice *float64 `query:"minPrice"`
	MaxPrice *float64 `query:"maxPrice"`
}

type TopSellers struct {
	Services []ServiceOption `json:"services"`
	Packages []Package       `json:"packages"`
}

func (s *ServiceOption) Item() *CatalogItem { return &s.CatalogItem }

func (p *Package) Item() *CatalogItem { return &p.CatalogItem }
