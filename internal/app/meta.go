package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/patrickprogramme/subalign/internal/tracks"
	"github.com/patrickprogramme/subalign/pkg/model"
)

// rawInfo : sous-ensemble du JSON de métadonnées produit par l'extracteur
// (yt-dlp --dump-json ou équivalent). Les champs non mappés sont ignorés.
type rawInfo struct {
	ID                string                      `json:"id"`
	Title             string                      `json:"title"`
	ChannelID         string                      `json:"channel_id"`
	Channel           string                      `json:"channel"`
	Uploader          string                      `json:"uploader"`
	Subtitles         map[string][]tracks.Variant `json:"subtitles"`
	AutomaticCaptions map[string][]tracks.Variant `json:"automatic_captions"`
}

// LoadMetaFile lit un fichier de métadonnées et en extrait l'identité de la
// vidéo + le catalogue des pistes annoncées.
func LoadMetaFile(path string) (model.VideoMeta, tracks.Catalog, error) {
	var meta model.VideoMeta
	var catalog tracks.Catalog

	data, err := os.ReadFile(path)
	if err != nil {
		return meta, catalog, fmt.Errorf("read metadata %s: %w", path, err)
	}

	var info rawInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return meta, catalog, fmt.Errorf("parse metadata %s: %w", path, err)
	}

	channel := info.Channel
	if channel == "" {
		channel = info.Uploader
	}
	meta = model.VideoMeta{
		YoutubeID:   info.ID,
		Title:       info.Title,
		ChannelID:   info.ChannelID,
		ChannelName: channel,
	}
	catalog = tracks.Catalog{
		Manual: info.Subtitles,
		Auto:   info.AutomaticCaptions,
	}
	return meta, catalog, meta.Validate()
}
