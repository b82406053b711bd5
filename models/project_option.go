package models

// ProjectOption links one project to one (category, option value) pair.
// The columns are nullable in the legacy schema, so readers must treat a
// row with a missing category or option as unresolved.
type ProjectOption struct {
	ID         uint  `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID  *uint `json:"projectId" db:"project_id" gorm:"column:project_id;index"`
	CategoryID *uint `json:"categoryId" db:"category_id" gorm:"column:category_id"`
	OptionID   *uint `json:"optionId" db:"option_id" gorm:"column:option_id"`
}

func (ProjectOption) TableName() string { return "project_options" }

// ProjectCategory is a resolved (category, option value) pair as served
// to clients. Fields are pointers because the null-preserving join keeps
// rows whose category or option no longer resolves.
type ProjectCategory struct {
	CategoryName *string `json:"categoryName" gorm:"column:category_name"`
	OptionName   *string `json:"optionName" gorm:"column:option_name"`
}
