package models

// Category is static reference data: a typed attribute projects can be
// classified by, e.g. "Project Type" or "Domain".
type Category struct {
	CategoryID uint   `json:"categoryId" db:"category_id" gorm:"column:category_id;primaryKey;autoIncrement"`
	Name       string `json:"category" db:"category" gorm:"column:category;type:varchar(100);not null"`

	Options []CategoryOptionValue `json:"options,omitempty" gorm:"foreignKey:CategoryID;references:CategoryID"`
}

func (Category) TableName() string { return "categories" }
