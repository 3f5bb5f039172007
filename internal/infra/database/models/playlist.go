package models

import (
	"time"
)

type Playlist struct {
	PID       string    `json:"pid" gorm:"column:pid;primaryKey;type:text"`
	Title     string    `json:"playlistTitle" gorm:"column:playlist_title;type:text;not null"`
	CreatorID string    `json:"creatorid" gorm:"column:creatorid;type:text;not null;index"`
	Creator   *Artist   `json:"-" gorm:"foreignKey:CreatorID;references:AID;constraint:OnDelete:CASCADE;"`
	Tracks    []Track   `json:"tracks" gorm:"many2many:playlist_tracks;joinForeignKey:playlist_pid;joinReferences:track_tid"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;not null;autoCreateTime"`
}

func (Playlist) TableName() string { return "playlists" }
