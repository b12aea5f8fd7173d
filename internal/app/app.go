// Package app orchestre le pipeline complet d'une vidéo : sélection des
// pistes, téléchargement du flux brut, réalignement des cues, écriture du
// fichier canonique dans l'archive, et indexation des fragments. Le coeur
// (internal/captions) reste pur ; toutes les I/O vivent ici.
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/subalign/internal/captions"
	"github.com/patrickprogramme/subalign/internal/config"
	"github.com/patrickprogramme/subalign/internal/fetch"
	"github.com/patrickprogramme/subalign/internal/fragments"
	"github.com/patrickprogramme/subalign/internal/fsutil"
	"github.com/patrickprogramme/subalign/internal/index"
	"github.com/patrickprogramme/subalign/internal/tracks"
	"github.com/patrickprogramme/subalign/pkg/model"
)

const filePerm = 0o644

// nowFunc : horloge injectable pour les tests (timestamp de refresh des fragments).
var nowFunc = time.Now

// App porte les dépendances du pipeline.
type App struct {
	cfg   *config.Config
	store index.Interface // peut être nil si l'indexation est désactivée
}

// New construit l'application. store peut être nil quand cfg ne demande pas
// d'indexation.
func New(cfg *config.Config, store index.Interface) *App {
	return &App{cfg: cfg, store: store}
}

// Run traite toutes les pistes retenues pour une vidéo. Une piste en échec
// (download raté, piste vide) est journalisée et sautée, elle ne bloque pas
// les autres langues.
func (a *App) Run(ctx context.Context, meta model.VideoMeta, catalog tracks.Catalog) error {
	if err := meta.Validate(); err != nil {
		return err
	}

	selected := tracks.Select(catalog, a.cfg.Languages(), a.cfg.IncludeAuto())
	if len(selected) == 0 {
		log.Printf("%s: no subtitle track for languages %v", meta.YoutubeID, a.cfg.Languages())
		return nil
	}

	for _, track := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Printf("%s-%s: get %s", meta.YoutubeID, track.Lang, track.Source)
		if err := a.processTrack(ctx, meta, track); err != nil {
			log.Printf("%s-%s: %v", meta.YoutubeID, track.Lang, err)
			continue
		}
	}
	return nil
}

// processTrack : download + traitement d'une piste.
func (a *App) processTrack(ctx context.Context, meta model.VideoMeta, track model.SubtitleTrack) error {
	timeout := time.Duration(a.cfg.Fetch.TimeoutSec) * time.Second
	raw, err := fetch.Subtitle(ctx, track.URL, timeout, a.cfg.Fetch.MaxBytes)
	if err != nil {
		return fmt.Errorf("download subtitle: %w", err)
	}
	return a.ProcessRaw(ctx, meta, track, string(raw))
}

// ProcessRaw exécute le coeur sur un blob déjà en mémoire (téléchargé ou lu
// d'un fichier local) puis persiste et indexe le résultat. Une piste qui ne
// produit aucun cue aligné est acceptée : on la saute, ce n'est pas une
// erreur.
func (a *App) ProcessRaw(ctx context.Context, meta model.VideoMeta, track model.SubtitleTrack, raw string) error {
	res := captions.Process(raw)
	if res.Empty() {
		log.Printf("%s-%s: empty subtitle track, skipping", meta.YoutubeID, track.Lang)
		return nil
	}

	dest := filepath.Join(a.cfg.VideosDir, tracks.MediaPath(meta, track.Lang))
	if err := fsutil.WriteFileAtomic(dest, []byte(res.SubtitleStr()), filePerm); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}

	if !a.cfg.Subtitles.Index || a.store == nil {
		return nil
	}
	frags := fragments.Build(res.Matched, meta, track.Lang, track.Source, nowFunc().Unix())
	body, err := fragments.BulkBody(frags, a.cfg.Index.Name)
	if err != nil {
		return err
	}
	if err := a.store.Bulk(ctx, body); err != nil {
		return fmt.Errorf("index subtitle fragments: %w", err)
	}
	return nil
}

// DeleteVideo purge les fragments indexés d'une vidéo (avant retrait de
// l'archive, ou retraitement complet).
func (a *App) DeleteVideo(ctx context.Context, youtubeID string) error {
	if a.store == nil {
		return nil
	}
	return a.store.DeleteVideo(ctx, youtubeID)
}
