package models

import (
	"time"
)

type Album struct {
	AAID     string    `json:"aaid" gorm:"column:aaid;primaryKey;type:text"`
	Title    string    `json:"title" gorm:"type:text;not null;index"`
	Cover    *string   `json:"albumCover" gorm:"column:album_cover;type:text"`
	ArtistID string    `json:"artistid" gorm:"column:artistid;type:text;not null;index"`
	Artist   *Artist   `json:"artist,omitempty" gorm:"foreignKey:ArtistID;references:AID"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;not null;autoCreateTime"`
}

func (Album) TableName() string { return "albums" }

type Genre struct {
	GID      string  `json:"gid" gorm:"column:gid;primaryKey;type:text"`
	Genre    string  `json:"genre" gorm:"type:text;not null;uniqueIndex;default:UNDEFINED"`
	CoverURL *string `json:"genreCoverUrl" gorm:"column:genre_cover_url;type:text"`
}

func (Genre) TableName() string { return "genres" }

type Track struct {
	TID                string    `json:"tid" gorm:"column:tid;primaryKey;type:text"`
	Title              string    `json:"title" gorm:"type:text;not null;index"`
	ArtistID           string    `json:"r_aid" gorm:"column:r_aid;type:text;not null;index"`
	Artist             *Artist   `json:"artist,omitempty" gorm:"foreignKey:ArtistID;references:AID"`
	Duration           int       `json:"duration" gorm:"not null"`
	GenreID            string    `json:"genreid" gorm:"column:genreid;type:text;not null;index"`
	Genre              *Genre    `json:"genre,omitempty" gorm:"foreignKey:GenreID;references:GID"`
	AlbumID            string    `json:"albumid" gorm:"column:albumid;type:text;not null;index"`
	Album              *Album    `json:"album,omitempty" gorm:"foreignKey:AlbumID;references:AAID;constraint:OnDelete:CASCADE;"`
	Lyrics             *string   `json:"lyrics" gorm:"type:text"`
	HostedDirectoryURL string    `json:"hostedDirectoryUrl" gorm:"column:hosted_directory_url;type:text;not null"`
	CDate              time.Time `json:"cdate" gorm:"->;<-:create;not null;autoCreateTime"`
}

func (Track) TableName() string { return "tracks" }
