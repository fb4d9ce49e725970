package model

// LinksForm is the flat desired-state form: one field per platform, blank means no link.
type LinksForm struct {
	ArtistSlug string `json:"artist_slug" form:"artist_slug"`

	AmazonMusic  string `json:"amazon_music" form:"amazon_music"`
	AppleMusic   string `json:"apple_music" form:"apple_music"`
	Bandcamp     string `json:"bandcamp" form:"bandcamp"`
	Beatport     string `json:"beatport" form:"beatport"`
	Deezer       string `json:"deezer" form:"deezer"`
	SoundCloud   string `json:"sound_cloud" form:"sound_cloud"`
	Spotify      string `json:"spotify" form:"spotify"`
	Tidal        string `json:"tidal" form:"tidal"`
	YouTubeMusic string `json:"you_tube_music" form:"you_tube_music"`

	BlueSky   string `json:"blue_sky" form:"blue_sky"`
	Facebook  string `json:"facebook" form:"facebook"`
	Instagram string `json:"instagram" form:"instagram"`
	LinkedIn  string `json:"linked_in" form:"linked_in"`
	Mastodon  string `json:"mastodon" form:"mastodon"`
	Pinterest string `json:"pinterest" form:"pinterest"`
	Snapchat  string `json:"snapchat" form:"snapchat"`
	Threads   string `json:"threads" form:"threads"`
	TikTok    string `json:"tik_tok" form:"tik_tok"`
	Twitter   string `json:"twitter" form:"twitter"`
	YouTube   string `json:"you_tube" form:"you_tube"`
}

// MusicLinks reads the music-service fields into a desired-state map.
func (f LinksForm) MusicLinks() map[MusicService]string {
	return map[MusicService]string{
		AmazonMusic:  f.AmazonMusic,
		AppleMusic:   f.AppleMusic,
		Bandcamp:     f.Bandcamp,
		Beatport:     f.Beatport,
		Deezer:       f.Deezer,
		SoundCloud:   f.SoundCloud,
		Spotify:      f.Spotify,
		Tidal:        f.Tidal,
		YouTubeMusic: f.YouTubeMusic,
	}
}

// SocialLinks reads the social-media fields into a desired-state map.
func (f LinksForm) SocialLinks() map[SocialMedia]string {
	return map[SocialMedia]string{
		BlueSky:   f.BlueSky,
		Facebook:  f.Facebook,
		Instagram: f.Instagram,
		LinkedIn:  f.LinkedIn,
		Mastodon:  f.Mastodon,
		Pinterest: f.Pinterest,
		Snapchat:  f.Snapchat,
		Threads:   f.Threads,
		TikTok:    f.TikTok,
		Twitter:   f.Twitter,
		YouTube:   f.YouTube,
	}
}
