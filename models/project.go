package models

import "time"

// Project is a showcased student work item. CreatedByUID is nullable:
// orphaned projects whose owner account was removed stay visible.
type Project struct {
	ProjectID          uint      `json:"projectId" db:"project_id" gorm:"column:project_id;primaryKey;autoIncrement"`
	ProjectName        string    `json:"projectName" db:"project_name" gorm:"column:project_name;type:varchar(255);not null"`
	ProjectDescription string    `json:"projectDescription" db:"project_description" gorm:"column:project_description;type:text"`
	ProjectLink        string    `json:"projectLink" db:"project_link" gorm:"column:project_link;type:varchar(255)"`
	CustomDomain       string    `json:"customDomain" db:"custom_domain" gorm:"column:custom_domain;type:varchar(255)"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;autoCreateTime"`
	CreatedByUID       *string   `json:"createdByUid" db:"created_by_uid" gorm:"column:created_by_uid;type:varchar(255);index"`

	Members []TeamMember    `json:"members,omitempty" gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE"`
	Options []ProjectOption `json:"-" gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string { return "projects" }

// OwnedBy reports whether uid owns the project. Orphaned projects have
// no owner and are owned by nobody.
func (p Project) OwnedBy(uid string) bool {
	return p.CreatedByUID != nil && *p.CreatedByUID == uid
}
