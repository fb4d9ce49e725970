package model

import "time"

// Platform is one key of a closed link vocabulary.
type Platform interface {
	comparable
	StorageKey() string
}

// Vocabulary is a closed platform enumeration plus the table its links live in.
type Vocabulary[P Platform] struct {
	Name     string
	Table    string
	Variants []P
}

// Parse maps a stored key back to its platform.
func (v Vocabulary[P]) Parse(key string) (P, bool) {
	for _, p := range v.Variants {
		if p.StorageKey() == key {
			return p, true
		}
	}
	var zero P
	return zero, false
}

// Link is one stored URL for a (artist, platform) pair.
type Link[P Platform] struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	Platform  P         `json:"platform"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MusicService string

const (
	AmazonMusic  MusicService = "AmazonMusic"
	AppleMusic   MusicService = "AppleMusic"
	Bandcamp     MusicService = "Bandcamp"
	Beatport     MusicService = "Beatport"
	Deezer       MusicService = "Deezer"
	SoundCloud   MusicService = "SoundCloud"
	Spotify      MusicService = "Spotify"
	Tidal        MusicService = "Tidal"
	YouTubeMusic MusicService = "YouTubeMusic"
)

func (m MusicService) StorageKey() string { return string(m) }

type SocialMedia string

const (
	BlueSky   SocialMedia = "BlueSky"
	Facebook  SocialMedia = "Facebook"
	Instagram SocialMedia = "Instagram"
	LinkedIn  SocialMedia = "LinkedIn"
	Mastodon  SocialMedia = "Mastodon"
	Pinterest SocialMedia = "Pinterest"
	Snapchat  SocialMedia = "Snapchat"
	Threads   SocialMedia = "Threads"
	TikTok    SocialMedia = "TikTok"
	Twitter   SocialMedia = "Twitter"
	YouTube   SocialMedia = "YouTube"
)

func (s SocialMedia) StorageKey() string { return string(s) }

var MusicServices = Vocabulary[MusicService]{
	Name:  "music services",
	Table: "music_services",
	Variants: []MusicService{
		AmazonMusic, AppleMusic, Bandcamp, Beatport, Deezer,
		SoundCloud, Spotify, Tidal, YouTubeMusic,
	},
}

var SocialMediaServices = Vocabulary[SocialMedia]{
	Name:  "social media",
	Table: "social_media_services",
	Variants: []SocialMedia{
		BlueSky, Facebook, Instagram, LinkedIn, Mastodon, Pinterest,
		Snapchat, Threads, TikTok, Twitter, YouTube,
	},
}

// ArtistLinks is the full link set of one artist.
type ArtistLinks struct {
	ArtistID int64                `json:"artist_id"`
	Music    []Link[MusicService] `json:"music"`
	Social   []Link[SocialMedia]  `json:"social"`
}
