package models

import (
	"time"
)

type Artist struct {
	AID             string    `json:"aid" gorm:"column:aid;primaryKey;type:text"`
	Email           string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"type:text;not null"`
	Name            string    `json:"name" gorm:"type:text;not null;index"`
	Gender          string    `json:"gender" gorm:"type:text;not null;default:UNDEFINED"`
	Type            string    `json:"type" gorm:"type:text;not null;default:ARTIST"`
	Bio             *string   `json:"bio" gorm:"type:text"`
	ProfileImageURL *string   `json:"profileImageUrl" gorm:"column:profile_image_url;type:text"`
	Albums          []Album   `json:"albums" gorm:"foreignKey:ArtistID;references:AID;constraint:OnDelete:CASCADE;"`
	Tracks          []Track   `json:"tracks" gorm:"foreignKey:ArtistID;references:AID;constraint:OnDelete:CASCADE;"`
	CDate           time.Time `json:"cdate" gorm:"->;<-:create;not null;autoCreateTime"`
}

func (Artist) TableName() string { return "artists" }
