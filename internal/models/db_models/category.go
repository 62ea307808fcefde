package db_models

// Category is a top-level catalogue grouping. Names are unique store-wide.
type Category struct {
	BaseModel
	Name     string    `gorm:"unique;not null" json:"name"`
	Image    string    `json:"image"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
