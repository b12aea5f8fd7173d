// Package fragments transforme les cues alignés en unités de texte
// indexables : un fragment par cue, portant l'identité de la vidéo et les
// métadonnées dénormalisées attendues par le store de documents. Le package
// met aussi en forme le corps NDJSON d'un bulk write ; l'écriture elle-même
// appartient à internal/index.
package fragments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickprogramme/subalign/internal/captions"
	"github.com/patrickprogramme/subalign/pkg/model"
)

// Fragment est une unité de sous-titre exportable. Les noms de champs JSON
// sont le schéma du store, ne pas les renommer sans migration.
type Fragment struct {
	FragmentID  string          `json:"subtitle_fragment_id"`
	YoutubeID   string          `json:"youtube_id"`
	Title       string          `json:"title"`
	Channel     string          `json:"subtitle_channel"`
	ChannelID   string          `json:"subtitle_channel_id"`
	LastRefresh int64           `json:"subtitle_last_refresh"`
	Lang        string          `json:"subtitle_lang"`
	Source      string          `json:"subtitle_source"`
	Start       model.Timestamp `json:"subtitle_start"`
	End         model.Timestamp `json:"subtitle_end"`
	Index       int             `json:"subtitle_index"`
	Line        string          `json:"subtitle_line"`
}

// FragmentID compose l'identité déterministe d'un fragment :
// "<video-id>-<lang>-<sequence-id>". Stable d'un run à l'autre pour une même
// entrée, ce qui permet au store de remplacer (et non fusionner) les
// documents d'un retraitement.
func FragmentID(youtubeID, lang string, cueID int) string {
	return fmt.Sprintf("%s-%s-%d", youtubeID, lang, cueID)
}

// Build émet un Fragment par cue aligné, dans l'ordre des ids.
// refreshed est l'epoch (secondes) du traitement courant.
func Build(matched []captions.MatchedCue, meta model.VideoMeta, lang string, source model.SubSource, refreshed int64) []Fragment {
	frags := make([]Fragment, 0, len(matched))
	for _, cue := range matched {
		frags = append(frags, Fragment{
			FragmentID:  FragmentID(meta.YoutubeID, lang, cue.ID),
			YoutubeID:   meta.YoutubeID,
			Title:       meta.Title,
			Channel:     meta.ChannelName,
			ChannelID:   meta.ChannelID,
			LastRefresh: refreshed,
			Lang:        lang,
			Source:      string(source),
			Start:       cue.Start,
			End:         cue.End,
			Index:       cue.ID,
			Line:        strings.Join(cue.Lines, " "),
		})
	}
	return frags
}

// bulkAction est la ligne d'action précédant chaque document dans le corps bulk.
type bulkAction struct {
	Index bulkIndexMeta `json:"index"`
}

type bulkIndexMeta struct {
	IndexName string `json:"_index"`
	ID        string `json:"_id"`
}

// BulkBody met en forme le corps NDJSON d'un bulk write : pour chaque
// fragment, une ligne d'action (index + _id) suivie du document, le tout
// terminé par un newline final comme l'exige le protocole.
func BulkBody(frags []Fragment, indexName string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// json.Encoder ajoute déjà un "\n" après chaque valeur encodée

	for _, frag := range frags {
		action := bulkAction{Index: bulkIndexMeta{IndexName: indexName, ID: frag.FragmentID}}
		if err := enc.Encode(action); err != nil {
			return nil, fmt.Errorf("BulkBody: encode action %s: %w", frag.FragmentID, err)
		}
		if err := enc.Encode(frag); err != nil {
			return nil, fmt.Errorf("BulkBody: encode document %s: %w", frag.FragmentID, err)
		}
	}
	return buf.Bytes(), nil
}
