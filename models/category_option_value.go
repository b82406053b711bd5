package models

// CategoryOptionValue is one selectable value of a Category, e.g. "AI"
// under "Domain".
type CategoryOptionValue struct {
	OptionID   uint   `json:"optionId" db:"option_id" gorm:"column:option_id;primaryKey;autoIncrement"`
	OptionName string `json:"optionName" db:"option_name" gorm:"column:option_name;type:varchar(255);not null"`
	CategoryID *uint  `json:"categoryId" db:"category_id" gorm:"column:category_id;index"`
}

func (CategoryOptionValue) TableName() string { return "category_option_values" }
