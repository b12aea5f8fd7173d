// Package tracks choisit, dans les métadonnées d'une vidéo, les pistes de
// sous-titres à traiter : pour chaque langue configurée, la piste fournie
// par l'auteur est préférée ; à défaut, et si la config l'autorise, la
// caption auto-générée est retenue.
package tracks

import (
	"fmt"
	"path"
	"strings"

	"github.com/patrickprogramme/subalign/internal/fsutil"
	"github.com/patrickprogramme/subalign/pkg/model"
)

// Variant est un format disponible pour une langue donnée, tel que décodé
// des métadonnées de la plateforme.
type Variant struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// Catalog regroupe les pistes annoncées par la plateforme : les sous-titres
// uploadés par l'auteur et les captions auto-générées, par code de langue.
type Catalog struct {
	Manual map[string][]Variant `json:"subtitles"`
	Auto   map[string][]Variant `json:"automatic_captions"`
}

// normalizeManualLangs ramène les clés spécifiques à un pays vers la langue
// de base ("en-US" -> "en") et écarte la pseudo-langue live_chat.
func (c Catalog) normalizeManualLangs() map[string][]Variant {
	if len(c.Manual) == 0 {
		return nil
	}
	out := make(map[string][]Variant, len(c.Manual))
	for key, variants := range c.Manual {
		lang := strings.SplitN(key, "-", 2)[0]
		if lang == "live_chat" {
			continue
		}
		out[lang] = variants
	}
	return out
}

// vttVariant renvoie la variante "vtt" d'une liste de formats, s'il y en a une.
func vttVariant(variants []Variant) (Variant, bool) {
	for _, v := range variants {
		if v.Ext == "vtt" {
			return v, true
		}
	}
	return Variant{}, false
}

// Select choisit au plus une piste par langue demandée : user d'abord,
// auto ensuite si includeAuto est vrai. Une langue sans piste exploitable
// est simplement absente du résultat.
func Select(c Catalog, langs []string, includeAuto bool) []model.SubtitleTrack {
	manual := c.normalizeManualLangs()

	var selected []model.SubtitleTrack
	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		if v, ok := vttVariant(manual[lang]); ok {
			selected = append(selected, model.SubtitleTrack{
				Lang:   lang,
				Source: model.SubSourceUser,
				URL:    v.URL,
			})
			continue
		}
		if !includeAuto {
			continue
		}
		if v, ok := vttVariant(c.Auto[lang]); ok {
			selected = append(selected, model.SubtitleTrack{
				Lang:   lang,
				Source: model.SubSourceAuto,
				URL:    v.URL,
			})
		}
	}
	return selected
}

// MediaPath dérive le chemin relatif du fichier de sous-titres canonique à
// partir du chemin du fichier vidéo : ".mp4" -> "-<lang>.vtt". Si la vidéo
// n'a pas de chemin connu, on compose "<chaîne>/<id>-<lang>.vtt".
func MediaPath(meta model.VideoMeta, lang string) string {
	if meta.MediaURL != "" {
		return strings.TrimSuffix(meta.MediaURL, ".mp4") + fmt.Sprintf("-%s.vtt", lang)
	}
	channel := fsutil.SanitizeFilename(meta.ChannelName)
	return path.Join(channel, fmt.Sprintf("%s-%s.vtt", meta.YoutubeID, lang))
}
