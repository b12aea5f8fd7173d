package model

import (
	"fmt"
	"strings"
)

// SubtitleTrack décrit une piste de sous-titres retenue pour une vidéo.
// URL pointe vers le flux brut côté plateforme ; MediaPath est le chemin
// relatif (sous le dossier d'archive) où la version canonique sera écrite.
type SubtitleTrack struct {
	Lang      string    `json:"lang"`
	Source    SubSource `json:"source"`
	URL       string    `json:"url,omitempty"`
	MediaPath string    `json:"media_url,omitempty"`
}

func (s SubtitleTrack) String() string {
	return fmt.Sprintf("SubtitleTrack(lang=%s, source=%s)", s.Lang, s.Source)
}

// VideoMeta regroupe les métadonnées dénormalisées d'une vidéo, telles
// qu'attendues par le builder de fragments : identité de la vidéo + chaîne.
type VideoMeta struct {
	YoutubeID   string `json:"youtube_id"`
	Title       string `json:"title"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`

	// MediaURL : chemin relatif du fichier vidéo dans l'archive
	// (ex: "Channel/20240101_abc123_Title.mp4"). Peut être vide.
	MediaURL string `json:"media_url,omitempty"`
}

func (m VideoMeta) String() string {
	return fmt.Sprintf("VideoMeta[ID=%s, Title=%q, Channel=%s]",
		m.YoutubeID, m.Title, m.ChannelName)
}

// Pretty retourne une fiche multi-lignes simple pour l'affichage console.
func (m VideoMeta) Pretty() string {
	channel := m.ChannelName
	if channel == "" {
		channel = "<unknown>"
	}
	return fmt.Sprintf(
		"Video:\n"+
			"  ID      : %s\n"+
			"  Title   : %q\n"+
			"  Channel : %s (%s)\n",
		m.YoutubeID,
		m.Title,
		channel,
		m.ChannelID,
	)
}

// Validate vérifie que les champs indispensables à la construction des
// identités de fragments sont présents.
func (m VideoMeta) Validate() error {
	if strings.TrimSpace(m.YoutubeID) == "" {
		return fmt.Errorf("VideoMeta: youtube_id manquant")
	}
	return nil
}
