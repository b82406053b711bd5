package models

// TeamMember is one person credited on a project.
type TeamMember struct {
	MemberID  uint   `json:"memberId,omitempty" db:"member_id" gorm:"column:member_id;primaryKey;autoIncrement"`
	ProjectID *uint  `json:"projectId,omitempty" db:"project_id" gorm:"column:project_id;index"`
	Name      string `json:"name" db:"name" gorm:"column:name;type:varchar(100)"`
	Linkedin  string `json:"linkedin" db:"linkedin" gorm:"column:linkedin;type:varchar(255)"`
}

func (TeamMember) TableName() string { return "team_members" }

// MemberSummary is the public projection of a team member: name and
// social link only, no row identifiers.
type MemberSummary struct {
	Name     string `json:"name" gorm:"column:name"`
	Linkedin string `json:"linkedin" gorm:"column:linkedin"`
}
